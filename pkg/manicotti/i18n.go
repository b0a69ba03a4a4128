package manicotti

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var localizer *i18n.Localizer

// SetLocalization installs the message bundle and language preferences
// used to resolve button label ids at Setup time. Pass a nil bundle to
// disable localization; labels then resolve to empty strings.
func SetLocalization(bundle *i18n.Bundle, langs ...string) {
	if bundle == nil {
		localizer = nil
		return
	}
	if len(langs) == 0 {
		langs = []string{language.English.String()}
	}
	localizer = i18n.NewLocalizer(bundle, langs...)
}

// LocalizeLabel resolves a button label message id against the installed
// bundle. A missing bundle or unknown id yields an empty label, never an
// error; captions are decorative.
func LocalizeLabel(messageID string) string {
	if localizer == nil || messageID == "" {
		return ""
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return ""
	}
	return msg
}
