package Models

import "strings"

var staffRoles = map[string]bool{
	"doctor":       true,
	"hygienist":    true,
	"assistant":    true,
	"nurse":        true,
	"receptionist": true,
	"others":       true,
}

type StaffInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Role         string `json:"role"`
	Salary       string `json:"salary"`
	WorkingDays  string `json:"workingDays"`
	WorkingTimes string `json:"times"`
	LeaveDays    string `json:"leaveDays"`
}

// StaffPatch carries only the fields the caller wants to change.
type StaffPatch struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Role         *string `json:"role"`
	Salary       *string `json:"salary"`
	WorkingDays  *string `json:"workingDays"`
	WorkingTimes *string `json:"times"`
	LeaveDays    *string `json:"leaveDays"`
}

func normalizeRole(role string) (string, bool) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return "others", true
	}
	return role, staffRoles[role]
}

func (s *Store) AddStaff(input StaffInput) (StaffMember, error) {
	var member StaffMember
	err := s.mutate(func(doc *Document) error {
		if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
			return ValidationError{Message: "staff name and phone are required"}
		}
		if !ValidPhone(input.Phone) {
			return ValidationError{Message: "phone must be a 10-digit mobile number"}
		}
		role, ok := normalizeRole(input.Role)
		if !ok {
			return ValidationError{Message: "unknown staff role " + input.Role}
		}
		member = StaffMember{
			ID:           NewID("staff"),
			Name:         strings.TrimSpace(input.Name),
			Phone:        strings.TrimSpace(input.Phone),
			Address:      input.Address,
			Role:         role,
			Salary:       input.Salary,
			WorkingDays:  input.WorkingDays,
			WorkingTimes: input.WorkingTimes,
			LeaveDays:    input.LeaveDays,
		}
		doc.Staff = append([]StaffMember{member}, doc.Staff...)
		return nil
	})
	return member, err
}

// UpdateStaff merges the patch into the record with the given id, in place.
// An unknown id is a silent no-op.
func (s *Store) UpdateStaff(id string, patch StaffPatch) error {
	return s.mutate(func(doc *Document) error {
		if patch.Role != nil {
			role, ok := normalizeRole(*patch.Role)
			if !ok {
				return ValidationError{Message: "unknown staff role " + *patch.Role}
			}
			patch.Role = &role
		}
		if patch.Phone != nil && !ValidPhone(*patch.Phone) {
			return ValidationError{Message: "phone must be a 10-digit mobile number"}
		}
		for i := range doc.Staff {
			if doc.Staff[i].ID != id {
				continue
			}
			member := &doc.Staff[i]
			if patch.Name != nil {
				member.Name = strings.TrimSpace(*patch.Name)
			}
			if patch.Phone != nil {
				member.Phone = strings.TrimSpace(*patch.Phone)
			}
			if patch.Address != nil {
				member.Address = *patch.Address
			}
			if patch.Role != nil {
				member.Role = *patch.Role
			}
			if patch.Salary != nil {
				member.Salary = *patch.Salary
			}
			if patch.WorkingDays != nil {
				member.WorkingDays = *patch.WorkingDays
			}
			if patch.WorkingTimes != nil {
				member.WorkingTimes = *patch.WorkingTimes
			}
			if patch.LeaveDays != nil {
				member.LeaveDays = *patch.LeaveDays
			}
			return nil
		}
		return nil
	})
}

// DeleteStaff removes the record by id unconditionally; confirmation is the
// caller's concern.
func (s *Store) DeleteStaff(id string) error {
	return s.mutate(func(doc *Document) error {
		for i := range doc.Staff {
			if doc.Staff[i].ID == id {
				doc.Staff = append(doc.Staff[:i], doc.Staff[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

func (s *Store) Staff() []StaffMember {
	return s.Snapshot().Staff
}
