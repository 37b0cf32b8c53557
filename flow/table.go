package flow

import (
	"fmt"

	"insurancebot/model"
)

// NextFunc resolves a successor step; most are fixed, a few depend on the
// same-person branch taken at the second step.
type NextFunc func(app *model.Application) model.Step

// Transition describes one step of the dialogue: what to ask, what to
// expect, where the answer goes and where the flow moves next.
//
// Next is nil on the drivers menu and the confirmation step, which the
// engine dispatches on the answer itself. Back is nil only on StepStart.
type Transition struct {
	Prompt  string
	Intro   string     // extra line shown only when the step is entered forward
	Example string     // hint appended under the prompt
	Choices [][]string // step-specific keyboard rows, nav row excluded
	Kind    Kind
	Ack     string // confirmation shown after this step's value is accepted
	Apply   func(app *model.Application, value string)
	Next    NextFunc
	Back    NextFunc
}

func to(step model.Step) NextFunc {
	return func(*model.Application) model.Step { return step }
}

func set(field func(app *model.Application) *string) func(*model.Application, string) {
	return func(app *model.Application, value string) {
		*field(app) = value
	}
}

// owner lazily allocates the owner record; it exists only on the
// different-person branch.
func owner(app *model.Application) *model.Person {
	if app.Owner == nil {
		app.Owner = &model.Person{}
	}
	return app.Owner
}

func draft(app *model.Application) *model.Driver {
	if app.Draft == nil {
		app.Draft = &model.Driver{}
	}
	return app.Draft
}

var transitions = map[model.Step]Transition{
	model.StepStart: {
		Next: to(model.StepSamePerson),
	},
	model.StepSamePerson: {
		Prompt:  "Собственник и страхователь - одно лицо?",
		Choices: [][]string{{model.LabelSamePerson, model.LabelDifferentPerson}},
		Apply: func(app *model.Application, value string) {
			app.Reset()
			app.SamePerson = value == model.LabelSamePerson
		},
		Next: to(model.StepInsuredName),
		Back: to(model.StepSamePerson),
	},
	model.StepInsuredName: {
		Prompt: "Введите ФИО страхователя полностью:",
		Apply:  set(func(a *model.Application) *string { return &a.Insured.Name }),
		Next:   to(model.StepInsuredBirthDate),
		Back:   to(model.StepSamePerson),
	},
	model.StepInsuredBirthDate: {
		Prompt:  "Введите дату рождения страхователя (в формате ДД.ММ.ГГГГ):",
		Example: "Пример: 15.05.1990",
		Kind:    KindDate,
		Apply:   set(func(a *model.Application) *string { return &a.Insured.BirthDate }),
		Next:    to(model.StepInsuredPassport),
		Back:    to(model.StepInsuredName),
	},
	model.StepInsuredPassport: {
		Prompt:  "Введите серию и номер паспорта страхователя:",
		Example: "Пример: 1234 567890",
		Apply:   set(func(a *model.Application) *string { return &a.Insured.Passport }),
		Next:    to(model.StepInsuredPassportIssueDate),
		Back:    to(model.StepInsuredBirthDate),
	},
	model.StepInsuredPassportIssueDate: {
		Prompt: "Введите дату выдачи паспорта страхователя (ДД.ММ.ГГГГ):",
		Kind:   KindDate,
		Apply:  set(func(a *model.Application) *string { return &a.Insured.PassportIssued }),
		Next:   to(model.StepInsuredPassportIssuedBy),
		Back:   to(model.StepInsuredPassport),
	},
	model.StepInsuredPassportIssuedBy: {
		Prompt: "Кем выдан паспорт страхователя?",
		Apply:  set(func(a *model.Application) *string { return &a.Insured.PassportIssuedBy }),
		Next:   to(model.StepInsuredPassportDeptCode),
		Back:   to(model.StepInsuredPassportIssueDate),
	},
	model.StepInsuredPassportDeptCode: {
		Prompt: "Введите код подразделения паспорта страхователя:",
		Apply:  set(func(a *model.Application) *string { return &a.Insured.PassportDeptCode }),
		Next:   to(model.StepInsuredAddress),
		Back:   to(model.StepInsuredPassportIssuedBy),
	},
	model.StepInsuredAddress: {
		Prompt:  "Введите прописку страхователя в формате:\nГород, населенный пункт, улица, дом, корпус, квартира",
		Example: "Пример: Москва, г. Москва, ул. Ленина, д. 10, к. 2, кв. 25",
		Apply:   set(func(a *model.Application) *string { return &a.Insured.Address }),
		Next: func(app *model.Application) model.Step {
			if app.SamePerson {
				return model.StepInsuredLicense
			}
			return model.StepOwnerName
		},
		Back: to(model.StepInsuredPassportDeptCode),
	},
	model.StepOwnerName: {
		Intro:  "Теперь введем данные собственника.",
		Prompt: "Введите ФИО собственника полностью:",
		Apply:  set(func(a *model.Application) *string { return &owner(a).Name }),
		Next:   to(model.StepOwnerBirthDate),
		Back:   to(model.StepInsuredAddress),
	},
	model.StepOwnerBirthDate: {
		Prompt:  "Введите дату рождения собственника (в формате ДД.ММ.ГГГГ):",
		Example: "Пример: 15.05.1990",
		Kind:    KindDate,
		Apply:   set(func(a *model.Application) *string { return &owner(a).BirthDate }),
		Next:    to(model.StepOwnerPassport),
		Back:    to(model.StepOwnerName),
	},
	model.StepOwnerPassport: {
		Prompt:  "Введите серию и номер паспорта собственника:",
		Example: "Пример: 1234 567890",
		Apply:   set(func(a *model.Application) *string { return &owner(a).Passport }),
		Next:    to(model.StepOwnerPassportIssueDate),
		Back:    to(model.StepOwnerBirthDate),
	},
	model.StepOwnerPassportIssueDate: {
		Prompt: "Введите дату выдачи паспорта собственника (ДД.ММ.ГГГГ):",
		Kind:   KindDate,
		Apply:  set(func(a *model.Application) *string { return &owner(a).PassportIssued }),
		Next:   to(model.StepOwnerPassportIssuedBy),
		Back:   to(model.StepOwnerPassport),
	},
	model.StepOwnerPassportIssuedBy: {
		Prompt: "Кем выдан паспорт собственника?",
		Apply:  set(func(a *model.Application) *string { return &owner(a).PassportIssuedBy }),
		Next:   to(model.StepOwnerPassportDeptCode),
		Back:   to(model.StepOwnerPassportIssueDate),
	},
	model.StepOwnerPassportDeptCode: {
		Prompt: "Введите код подразделения паспорта собственника:",
		Apply:  set(func(a *model.Application) *string { return &owner(a).PassportDeptCode }),
		Next:   to(model.StepInsuredLicense),
		Back:   to(model.StepOwnerPassportIssuedBy),
	},
	model.StepInsuredLicense: {
		Prompt:  "Введите серию и номер водительского удостоверения страхователя:",
		Example: "Пример: 1234 567890",
		Apply:   set(func(a *model.Application) *string { return &a.Insured.License }),
		Next:    to(model.StepInsuredLicenseIssueDate),
		Back: func(app *model.Application) model.Step {
			if app.SamePerson {
				return model.StepInsuredAddress
			}
			return model.StepOwnerPassportDeptCode
		},
	},
	model.StepInsuredLicenseIssueDate: {
		Prompt: "Введите дату выдачи водительского удостоверения страхователя (ДД.ММ.ГГГГ):",
		Kind:   KindDate,
		Apply:  set(func(a *model.Application) *string { return &a.Insured.LicenseIssued }),
		Next:   to(model.StepInsuredLicenseExpiry),
		Back:   to(model.StepInsuredLicense),
	},
	model.StepInsuredLicenseExpiry: {
		Prompt: "Введите срок окончания действия прав страхователя (ДД.ММ.ГГГГ):",
		Kind:   KindDate,
		Apply:  set(func(a *model.Application) *string { return &a.Insured.LicenseExpiry }),
		Next:   to(model.StepVehicleBrand),
		Back:   to(model.StepInsuredLicenseIssueDate),
	},
	model.StepVehicleBrand: {
		Intro:  "Теперь введем данные транспортного средства.",
		Prompt: "Введите марку автомобиля:",
		Apply:  set(func(a *model.Application) *string { return &a.Vehicle.Brand }),
		Next:   to(model.StepVehicleModel),
		Back:   to(model.StepInsuredLicenseExpiry),
	},
	model.StepVehicleModel: {
		Prompt: "Введите модель автомобиля:",
		Apply:  set(func(a *model.Application) *string { return &a.Vehicle.Model }),
		Next:   to(model.StepVehicleYear),
		Back:   to(model.StepVehicleBrand),
	},
	model.StepVehicleYear: {
		Prompt: "Введите год выпуска автомобиля:",
		Apply:  set(func(a *model.Application) *string { return &a.Vehicle.Year }),
		Next:   to(model.StepVehiclePower),
		Back:   to(model.StepVehicleModel),
	},
	model.StepVehiclePower: {
		Prompt: "Введите мощность двигателя в л.с.:",
		Apply:  set(func(a *model.Application) *string { return &a.Vehicle.Power }),
		Next:   to(model.StepVehiclePlate),
		Back:   to(model.StepVehicleYear),
	},
	model.StepVehiclePlate: {
		Prompt: "Введите государственный номер:",
		Apply:  set(func(a *model.Application) *string { return &a.Vehicle.Plate }),
		Next:   to(model.StepVehicleVIN),
		Back:   to(model.StepVehiclePower),
	},
	model.StepVehicleVIN: {
		Prompt: "Введите VIN номер:",
		Apply:  set(func(a *model.Application) *string { return &a.Vehicle.VIN }),
		Next:   to(model.StepVehicleDocType),
		Back:   to(model.StepVehiclePlate),
	},
	model.StepVehicleDocType: {
		Prompt:  "Выберите тип документа:",
		Choices: [][]string{{model.LabelDocSTS, model.LabelDocPTS}},
		Apply:   set(func(a *model.Application) *string { return &a.Vehicle.DocType }),
		Next:    to(model.StepVehicleDocNumber),
		Back:    to(model.StepVehicleVIN),
	},
	model.StepVehicleDocNumber: {
		Prompt:  "Введите серию и номер документа:",
		Example: "Пример: 12АВ345678",
		Apply:   set(func(a *model.Application) *string { return &a.Vehicle.DocNumber }),
		Next:    to(model.StepVehicleDocIssueDate),
		Back:    to(model.StepVehicleDocType),
	},
	model.StepVehicleDocIssueDate: {
		Prompt: "Введите дату выдачи документа (ДД.ММ.ГГГГ):",
		Kind:   KindDate,
		Apply:  set(func(a *model.Application) *string { return &a.Vehicle.DocIssueDate }),
		Next:   to(model.StepDriversMenu),
		Back:   to(model.StepVehicleDocNumber),
	},
	model.StepDriversMenu: {
		Intro:  "Теперь добавим водителей.",
		Prompt: "Выберите действие:",
		Choices: [][]string{
			{model.LabelCopyInsured, model.LabelAddDriver},
			{model.LabelFinishDrivers},
		},
		Back: to(model.StepVehicleDocIssueDate),
	},
	model.StepDriverName: {
		Prompt: "Введите ФИО водителя полностью:",
		Apply:  set(func(a *model.Application) *string { return &draft(a).Name }),
		Next:   to(model.StepDriverLicense),
		Back:   to(model.StepDriversMenu),
	},
	model.StepDriverLicense: {
		Prompt:  "Введите серию и номер водительского удостоверения водителя:",
		Example: "Пример: 1234 567890",
		Apply:   set(func(a *model.Application) *string { return &draft(a).License }),
		Next:    to(model.StepDriverLicenseIssueDate),
		Back:    to(model.StepDriverName),
	},
	model.StepDriverLicenseIssueDate: {
		Prompt: "Введите дату выдачи прав (ДД.ММ.ГГГГ):",
		Kind:   KindDate,
		Apply:  set(func(a *model.Application) *string { return &draft(a).LicenseIssued }),
		Next:   to(model.StepDriverLicenseExpiry),
		Back:   to(model.StepDriverLicense),
	},
	model.StepDriverLicenseExpiry: {
		Prompt: "Введите срок окончания действия прав (ДД.ММ.ГГГГ):",
		Kind:   KindDate,
		Ack:    "✅ Водитель добавлен!",
		Apply: func(app *model.Application, value string) {
			d := draft(app)
			d.LicenseExpiry = value
			app.Drivers = append(app.Drivers, *d)
			app.Draft = nil
		},
		Next: to(model.StepDriversMenu),
		Back: to(model.StepDriverLicenseIssueDate),
	},
	model.StepPhone: {
		Prompt: "Введите телефон для связи:",
		Apply:  set(func(a *model.Application) *string { return &a.Insured.Phone }),
		Next:   to(model.StepConfirm),
		Back:   to(model.StepDriversMenu),
	},
	model.StepConfirm: {
		Intro:   "✅ Все данные собраны!",
		Prompt:  "Нажмите кнопку ниже для подтверждения и отправки заявки:",
		Choices: [][]string{{model.LabelConfirm}},
		Back:    to(model.StepPhone),
	},
}

// ValidateTable checks the transition table at startup: every step is
// present, every step has a forward edge except the two the engine
// dispatches itself, every step but the first has a back edge, and the
// non-loop portion of the graph reaches confirmation without revisiting
// a step (the drivers menu is the only intentional cycle).
func ValidateTable() error {
	if len(transitions) != model.StepCount {
		return fmt.Errorf("transition table has %d steps, want %d", len(transitions), model.StepCount)
	}

	for step := model.StepStart; step < model.Step(model.StepCount); step++ {
		t, ok := transitions[step]
		if !ok {
			return fmt.Errorf("step %s missing from transition table", step)
		}
		switch step {
		case model.StepDriversMenu, model.StepConfirm:
			if t.Next != nil {
				return fmt.Errorf("step %s must be dispatched by the engine, not the table", step)
			}
		default:
			if t.Next == nil {
				return fmt.Errorf("step %s has no forward edge", step)
			}
		}
		switch step {
		case model.StepStart, model.StepDriversMenu, model.StepConfirm:
			if t.Apply != nil {
				return fmt.Errorf("step %s must not write a field", step)
			}
		default:
			if t.Apply == nil {
				return fmt.Errorf("step %s has no field writer", step)
			}
		}
		if step != model.StepStart && t.Back == nil {
			return fmt.Errorf("step %s has no back edge", step)
		}
	}

	for _, samePerson := range []bool{true, false} {
		if err := walkForward(samePerson); err != nil {
			return err
		}
	}
	return nil
}

// walkForward follows forward edges from the first step for one branch
// setting, skipping over the drivers cycle, and verifies the chain is
// acyclic and terminates at confirmation.
func walkForward(samePerson bool) error {
	app := &model.Application{SamePerson: samePerson}
	seen := make(map[model.Step]bool)
	step := model.StepSamePerson
	for step != model.StepConfirm {
		if seen[step] {
			return fmt.Errorf("forward edges revisit step %s (samePerson=%v)", step, samePerson)
		}
		seen[step] = true
		if step == model.StepDriversMenu {
			step = model.StepPhone
			continue
		}
		step = transitions[step].Next(app)
	}
	return nil
}
