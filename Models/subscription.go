package Models

import "time"

type Entitlement int

const (
	Locked Entitlement = iota
	Unlocked
)

func (e Entitlement) String() string {
	if e == Unlocked {
		return "unlocked"
	}
	return "locked"
}

// ComputeEntitlement decides whether premium features are usable. It is a
// pure function of its inputs; callers pass the wall clock explicitly.
//
// Rule order: no session locks everything; an unexpired trial (one calendar
// month from first session) unlocks; an unexpired subscription unlocks;
// everything else is locked. Nothing is cached between checks.
func ComputeEntitlement(hasSession bool, trialStart *time.Time, sub *Subscription, now time.Time) Entitlement {
	if !hasSession {
		return Locked
	}
	if trialStart != nil {
		trialEnd := trialStart.AddDate(0, 1, 0)
		if !now.After(trialEnd) {
			return Unlocked
		}
	}
	if sub != nil {
		end, err := ParseISO(sub.End)
		if err == nil && !now.After(end) {
			return Unlocked
		}
	}
	return Locked
}

// EntitlementAt evaluates the current document and trial stamp at now.
func (s *Store) EntitlementAt(hasSession bool, now time.Time) Entitlement {
	trial := s.TrialStart()
	s.mu.Lock()
	sub := s.doc.Subscription
	s.mu.Unlock()
	return ComputeEntitlement(hasSession, trial, sub, now)
}

// PurchaseSubscription overwrites any active subscription with a fresh
// window starting at now. Buying before expiry resets the window; remaining
// time is not carried over.
func (s *Store) PurchaseSubscription(months int, price float64, now time.Time) (Subscription, error) {
	var sub Subscription
	err := s.mutate(func(doc *Document) error {
		if months <= 0 {
			return ValidationError{Message: "subscription months must be greater than zero"}
		}
		if price < 0 {
			return ValidationError{Message: "subscription price cannot be negative"}
		}
		sub = Subscription{
			Start:  now.UTC().Format(time.RFC3339),
			End:    now.AddDate(0, months, 0).UTC().Format(time.RFC3339),
			Months: months,
			Price:  price,
		}
		doc.Subscription = &sub
		return nil
	})
	return sub, err
}

func (s *Store) Subscription() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc.Subscription == nil {
		return nil
	}
	sub := *s.doc.Subscription
	return &sub
}
