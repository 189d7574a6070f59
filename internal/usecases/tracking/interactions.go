package tracking

import "github.com/attraveiculos/visitor-identity-api/internal/domain"

type interactionEffect struct {
	sessionFlag  domain.SessionFlag
	pageViewFlag domain.PageViewFlag
	eventType    domain.IdentityEventType
}

var interactions = map[domain.InteractionType]interactionEffect{
	domain.InteractionWhatsappClick: {
		sessionFlag:  domain.SessionFlagContactedWhatsapp,
		pageViewFlag: domain.PageViewFlagClickedWhatsapp,
		eventType:    domain.EventWhatsappClicked,
	},
	domain.InteractionPhoneClick: {
		pageViewFlag: domain.PageViewFlagClickedPhone,
	},
	domain.InteractionFormClick: {
		pageViewFlag: domain.PageViewFlagClickedForm,
	},
	domain.InteractionFormSubmit: {
		sessionFlag: domain.SessionFlagSubmittedForm,
		eventType:   domain.EventFormSubmitted,
	},
	domain.InteractionEngineSoundPlay: {
		pageViewFlag: domain.PageViewFlagPlayedEngineSound,
	},
	domain.InteractionCalculatorUse: {
		sessionFlag: domain.SessionFlagUsedCalculator,
	},
}
