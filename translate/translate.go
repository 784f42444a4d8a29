// Package translate formats user visible messages in the language of the
// current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("spirovm: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message language from a list of preferred
// BCP 47 tags. With no tags, en-US is used.
//
// Only messages formatted after the call are affected. Sentinel errors are
// formatted at package init, in the language of the process locale.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
