package model

// Step identifies one position in the application dialogue.
type Step int

const (
	StepStart Step = iota
	StepSamePerson
	StepInsuredName
	StepInsuredBirthDate
	StepInsuredPassport
	StepInsuredPassportIssueDate
	StepInsuredPassportIssuedBy
	StepInsuredPassportDeptCode
	StepInsuredAddress
	StepOwnerName
	StepOwnerBirthDate
	StepOwnerPassport
	StepOwnerPassportIssueDate
	StepOwnerPassportIssuedBy
	StepOwnerPassportDeptCode
	StepInsuredLicense
	StepInsuredLicenseIssueDate
	StepInsuredLicenseExpiry
	StepVehicleBrand
	StepVehicleModel
	StepVehicleYear
	StepVehiclePower
	StepVehiclePlate
	StepVehicleVIN
	StepVehicleDocType
	StepVehicleDocNumber
	StepVehicleDocIssueDate
	StepDriversMenu
	StepDriverName
	StepDriverLicense
	StepDriverLicenseIssueDate
	StepDriverLicenseExpiry
	StepPhone
	StepConfirm

	stepCount
)

// StepCount is the number of dialogue steps, StepStart included.
const StepCount = int(stepCount)

var stepNames = map[Step]string{
	StepStart:                    "start",
	StepSamePerson:               "same_person",
	StepInsuredName:              "insured_name",
	StepInsuredBirthDate:         "insured_birth_date",
	StepInsuredPassport:          "insured_passport",
	StepInsuredPassportIssueDate: "insured_passport_issue_date",
	StepInsuredPassportIssuedBy:  "insured_passport_issued_by",
	StepInsuredPassportDeptCode:  "insured_passport_dept_code",
	StepInsuredAddress:           "insured_address",
	StepOwnerName:                "owner_name",
	StepOwnerBirthDate:           "owner_birth_date",
	StepOwnerPassport:            "owner_passport",
	StepOwnerPassportIssueDate:   "owner_passport_issue_date",
	StepOwnerPassportIssuedBy:    "owner_passport_issued_by",
	StepOwnerPassportDeptCode:    "owner_passport_dept_code",
	StepInsuredLicense:           "insured_license",
	StepInsuredLicenseIssueDate:  "insured_license_issue_date",
	StepInsuredLicenseExpiry:     "insured_license_expiry",
	StepVehicleBrand:             "vehicle_brand",
	StepVehicleModel:             "vehicle_model",
	StepVehicleYear:              "vehicle_year",
	StepVehiclePower:             "vehicle_power",
	StepVehiclePlate:             "vehicle_plate",
	StepVehicleVIN:               "vehicle_vin",
	StepVehicleDocType:           "vehicle_doc_type",
	StepVehicleDocNumber:         "vehicle_doc_number",
	StepVehicleDocIssueDate:      "vehicle_doc_issue_date",
	StepDriversMenu:              "drivers_menu",
	StepDriverName:               "driver_name",
	StepDriverLicense:            "driver_license",
	StepDriverLicenseIssueDate:   "driver_license_issue_date",
	StepDriverLicenseExpiry:      "driver_license_expiry",
	StepPhone:                    "phone",
	StepConfirm:                  "confirm",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}
