// Package translate formats user visible messages for the simulator in the
// language of the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Fallback is the language used when the host locale is unknown.
var Fallback = language.AmericanEnglish

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("accsim: locale: %v", err)
	}

	tags := make([]string, 0, len(locales)+1)
	tags = append(tags, locales...)
	tags = append(tags, Fallback.String())

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(load)
	return printer.Sprintf(key, args...)
}
