package model

// Reply-keyboard labels and reserved navigation tokens. The navigation
// tokens are recognised at every step before any validation runs.
const (
	LabelBack = "⬅️ Назад"
	LabelHome = "🏠 В начало"

	LabelSamePerson      = "✅ Одно лицо"
	LabelDifferentPerson = "❌ Разные лица"

	LabelDocSTS = "СТС"
	LabelDocPTS = "ПТС"

	LabelCopyInsured   = "📋 Скопировать страхователя"
	LabelAddDriver     = "👤 Добавить водителя"
	LabelFinishDrivers = "✅ Завершить добавление"

	LabelConfirm = "✅ Подтвердить и отправить"
)
