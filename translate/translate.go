// Package translate formats user-visible messages for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// FALLBACK is used when no user locale can be determined.
const FALLBACK = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("cheaps: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message language from a list of preferred BCP 47
// tags. An empty list selects FALLBACK.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{FALLBACK}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
