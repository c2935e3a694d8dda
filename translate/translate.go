// Package translate routes user visible messages through a message printer
// matched against the system locales.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = sync.OnceValues(func() (language.Tag, *message.Printer) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("primes: locale: %v", err)
	}

	tag := language.AmericanEnglish
	if len(locales) != 0 {
		tag = message.MatchLanguage(locales...)
	}

	return tag, message.NewPrinter(tag)
})

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	_, p := printer()
	return p.Sprintf(key, args...)
}

// Language returns the language messages are printed in.
func Language() language.Tag {
	tag, _ := printer()
	return tag
}
