// Package translate renders user-visible messages through a locale-aware
// printer selected from the user's environment.
package translate

import (
	"log"
	"strconv"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("stackvm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Number renders an integer verbatim. The printer groups digits by locale,
// which must never happen to an address or an opcode.
func Number(value int64) string {
	return strconv.FormatInt(value, 10)
}
