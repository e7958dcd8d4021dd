package languages

import "golang.org/x/text/language"

var (
	TH = language.MustParse("th").String()
)
