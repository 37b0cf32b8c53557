package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurancebot/model"
)

func TestValidateTable(t *testing.T) {
	require.NoError(t, ValidateTable())
}

func TestForwardChainSamePerson(t *testing.T) {
	app := &model.Application{SamePerson: true}
	// Owner section is skipped entirely on the same-person branch.
	assert.Equal(t, model.StepInsuredLicense, transitions[model.StepInsuredAddress].Next(app))
	assert.Equal(t, model.StepInsuredAddress, transitions[model.StepInsuredLicense].Back(app))
}

func TestForwardChainDifferentPerson(t *testing.T) {
	app := &model.Application{SamePerson: false}
	assert.Equal(t, model.StepOwnerName, transitions[model.StepInsuredAddress].Next(app))
	assert.Equal(t, model.StepOwnerPassportDeptCode, transitions[model.StepInsuredLicense].Back(app))
	assert.Equal(t, model.StepInsuredAddress, transitions[model.StepOwnerName].Back(app))
}

func TestOwnerSectionBackEdges(t *testing.T) {
	app := &model.Application{SamePerson: false}
	// Backing up from the department-code step stays inside the owner
	// section.
	assert.Equal(t, model.StepOwnerPassportIssuedBy, transitions[model.StepOwnerPassportDeptCode].Back(app))
	assert.Equal(t, model.StepOwnerPassportIssueDate, transitions[model.StepOwnerPassportIssuedBy].Back(app))
}

func TestDriverLoopEdges(t *testing.T) {
	app := &model.Application{}
	assert.Equal(t, model.StepDriversMenu, transitions[model.StepDriverName].Back(app))
	assert.Equal(t, model.StepDriverName, transitions[model.StepDriverLicense].Back(app))
	assert.Equal(t, model.StepDriversMenu, transitions[model.StepDriverLicenseExpiry].Next(app))
	assert.Equal(t, model.StepVehicleDocIssueDate, transitions[model.StepDriversMenu].Back(app))
	assert.Equal(t, model.StepDriversMenu, transitions[model.StepPhone].Back(app))
}

func TestApplyWritesDeclaredField(t *testing.T) {
	app := &model.Application{}
	transitions[model.StepInsuredName].Apply(app, "Иванов Иван Иванович")
	assert.Equal(t, "Иванов Иван Иванович", app.Insured.Name)

	transitions[model.StepVehicleBrand].Apply(app, "Toyota")
	assert.Equal(t, "Toyota", app.Vehicle.Brand)

	transitions[model.StepOwnerName].Apply(app, "Петров Петр")
	require.NotNil(t, app.Owner)
	assert.Equal(t, "Петров Петр", app.Owner.Name)
}

func TestSamePersonApplyResetsApplication(t *testing.T) {
	app := &model.Application{
		SamePerson: true,
		Insured:    model.Person{Name: "старое имя"},
		Drivers:    []model.Driver{{Name: "водитель"}},
	}
	transitions[model.StepSamePerson].Apply(app, model.LabelDifferentPerson)
	assert.False(t, app.SamePerson)
	assert.Empty(t, app.Insured.Name)
	assert.Empty(t, app.Drivers)
}

func TestDriverExpiryApplyCompletesDraft(t *testing.T) {
	app := &model.Application{
		Draft: &model.Driver{
			Name:          "Сидоров",
			License:       "1111 222222",
			LicenseIssued: "01.01.2020",
		},
	}
	transitions[model.StepDriverLicenseExpiry].Apply(app, "01.01.2030")

	require.Len(t, app.Drivers, 1)
	assert.Nil(t, app.Draft)
	d := app.Drivers[0]
	assert.Equal(t, "Сидоров", d.Name)
	assert.Equal(t, "1111 222222", d.License)
	assert.Equal(t, "01.01.2020", d.LicenseIssued)
	assert.Equal(t, "01.01.2030", d.LicenseExpiry)
}
