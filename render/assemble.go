package render

import (
	"fmt"
	"time"

	"insurancebot/model"
)

const (
	docTitle = "ЗАЯВКА НА СТРАХОВАНИЕ"

	placeholder      = "Не указано"
	placeholderPhone = "Не указан"

	samePersonLine = "Собственник и страхователь - одно лицо"
	noDriversLine  = "Водители не указаны"

	// Section titles, in their fixed order.
	titleInsured = "СТРАХОВАТЕЛЬ"
	titleOwner   = "СОБСТВЕННИК"
	titleLicense = "ВОДИТЕЛЬСКОЕ УДОСТОВЕРЕНИЕ СТРАХОВАТЕЛЯ"
	titleVehicle = "ТРАНСПОРТНОЕ СРЕДСТВО"
	titleDrivers = "ВОДИТЕЛИ"
)

var closingLines = []Line{
	{Value: "Заявка успешно оформлена!"},
	{Value: "В течении 1 часа с Вами свяжется менеджер, для возможного уточнения деталей и дальнейшего оформления!"},
	{Value: "С Уважением, АО 'Альфастрахование'"},
}

const stampLayout = "02.01.2006 15:04"

func orDefault(v string) string {
	if v == "" {
		return placeholder
	}
	return v
}

// Assemble builds the section tree from a session. Every field renders
// as its value or the literal placeholder; an unset field is never an
// error at this point.
func Assemble(app *model.Application, now time.Time) Document {
	sections := []Section{
		insuredSection(&app.Insured),
		ownerSection(app),
		licenseSection(&app.Insured),
		vehicleSection(&app.Vehicle),
		driversSection(app.Drivers),
		{Lines: closingLines},
		phoneSection(app.Insured.Phone),
	}
	return Document{
		Title:       docTitle,
		GeneratedAt: now.Format(stampLayout),
		Sections:    sections,
	}
}

func insuredSection(p *model.Person) Section {
	return Section{
		Title: titleInsured,
		Lines: []Line{
			{Label: "ФИО", Value: orDefault(p.Name)},
			{Label: "Дата рождения", Value: orDefault(p.BirthDate)},
			{Label: "Паспорт", Value: orDefault(p.Passport)},
			{Label: "Дата выдачи паспорта", Value: orDefault(p.PassportIssued)},
			{Label: "Кем выдан", Value: orDefault(p.PassportIssuedBy)},
			{Label: "Код подразделения", Value: orDefault(p.PassportDeptCode)},
			{Label: "Прописка", Value: orDefault(p.Address)},
		},
	}
}

func ownerSection(app *model.Application) Section {
	if app.SamePerson || app.Owner == nil {
		return Section{
			Title: titleOwner,
			Lines: []Line{{Value: samePersonLine}},
		}
	}
	o := app.Owner
	return Section{
		Title: titleOwner,
		Lines: []Line{
			{Label: "ФИО", Value: orDefault(o.Name)},
			{Label: "Дата рождения", Value: orDefault(o.BirthDate)},
			{Label: "Паспорт", Value: orDefault(o.Passport)},
			{Label: "Дата выдачи паспорта", Value: orDefault(o.PassportIssued)},
			{Label: "Кем выдан", Value: orDefault(o.PassportIssuedBy)},
			{Label: "Код подразделения", Value: orDefault(o.PassportDeptCode)},
		},
	}
}

func licenseSection(p *model.Person) Section {
	return Section{
		Title: titleLicense,
		Lines: []Line{
			{Label: "В/у", Value: orDefault(p.License)},
			{Label: "Дата выдачи", Value: orDefault(p.LicenseIssued)},
			{Label: "Срок действия", Value: orDefault(p.LicenseExpiry)},
		},
	}
}

func vehicleSection(v *model.Vehicle) Section {
	return Section{
		Title: titleVehicle,
		Lines: []Line{
			{Label: "Марка", Value: orDefault(v.Brand)},
			{Label: "Модель", Value: orDefault(v.Model)},
			{Label: "Год выпуска", Value: orDefault(v.Year)},
			{Label: "Мощность", Value: orDefault(v.Power) + " л.с."},
			{Label: "Госномер", Value: orDefault(v.Plate)},
			{Label: "VIN", Value: orDefault(v.VIN)},
			{Label: "Документ", Value: orDefault(v.DocType) + " " + orDefault(v.DocNumber)},
			{Label: "Дата выдачи документа", Value: orDefault(v.DocIssueDate)},
		},
	}
}

func driversSection(drivers []model.Driver) Section {
	if len(drivers) == 0 {
		return Section{
			Title: titleDrivers,
			Lines: []Line{{Value: noDriversLine}},
		}
	}
	var lines []Line
	for i, d := range drivers {
		lines = append(lines,
			Line{Label: fmt.Sprintf("Водитель %d", i+1), Value: orDefault(d.Name)},
			Line{Label: "В/у", Value: orDefault(d.License), Indent: true},
			Line{Label: "Дата выдачи", Value: orDefault(d.LicenseIssued), Indent: true},
			Line{Label: "Срок действия", Value: orDefault(d.LicenseExpiry), Indent: true},
		)
	}
	return Section{Title: titleDrivers, Lines: lines}
}

func phoneSection(phone string) Section {
	if phone == "" {
		phone = placeholderPhone
	}
	return Section{
		Lines: []Line{{Label: "Телефон для связи", Value: phone}},
	}
}

// Filename builds the attachment name for the generated document.
func Filename(insuredName string, now time.Time) string {
	if insuredName == "" {
		insuredName = "Клиент"
	}
	return fmt.Sprintf("Заявка_%s_%s.docx", insuredName, now.Format("02012006_1504"))
}
