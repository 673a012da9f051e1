package Controllers

import (
	"fmt"
	"log"
	"path/filepath"

	"DentaDesk/Constants"
	"DentaDesk/Models"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportPatientsTable writes the full patient listing (name, phone, age,
// sex) to a spreadsheet for external printing. No row limit.
func ExportPatientsTable(c *gin.Context) {
	patients := Models.DB.Patients()

	headers := map[string]string{
		"A1": "Name",
		"B1": "Phone",
		"C1": "Age",
		"D1": "Sex",
	}
	file := excelize.NewFile()
	sheet := "Patients"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(patients); i++ {
		appendRowPatients(sheet, file, i, patients)
	}

	filename := filepath.Join(Constants.DataDir, "Patients.xlsx")
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowPatients(sheet string, file *excelize.File, index int, rows []Models.Patient) *excelize.File {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Name)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Phone)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].Age)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Sex)
	return file
}
