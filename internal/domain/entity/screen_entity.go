package entity

// Screen names the navigable destinations consumed by the onboarding flow.
// They match the mobile client's stack navigator route names one-to-one.
type Screen string

const (
	ScreenLogin               Screen = "Login"
	ScreenGenderSelection     Screen = "GenderSelection"
	ScreenMaleUsername        Screen = "MaleUsername"
	ScreenFemaleNameSetup     Screen = "FemaleNameSetup"
	ScreenFemaleAvatarSetup   Screen = "FemaleAvatarSetup"
	ScreenFemaleLanguageSetup Screen = "FemaleLanguageSetup"
	ScreenAudioVerification   Screen = "AudioVerification"
	ScreenMaleHome            Screen = "MaleHome"
	ScreenFemaleHome          Screen = "FemaleHome"
)
