package opencc

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// ProfileFromEnvironment picks a default conversion profile from the
// user's OS locale: Traditional-script locales get a t2s-family
// profile, everything Chinese otherwise gets s2t targeting the
// regional variant. Non-Chinese locales fall back to "s2t". The
// returned profile is always accepted by Convert.
func ProfileFromEnvironment() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("locale detection failed, using %v", userLocale)
	} else {
		tracer().Infof("detected user locale %v", userLocale)
	}
	return profileForLocale(userLocale)
}

func profileForLocale(locale string) string {
	lang := language.Make(locale)
	base, _ := lang.Base()
	if base.String() != "zh" {
		return "s2t"
	}
	// Region() guesses a likely region for bare tags (zh-Hant infers
	// TW); only an explicitly given region selects a regional profile.
	regionStr := ""
	if region, conf := lang.Region(); conf == language.Exact {
		regionStr = region.String()
	}
	script, _ := lang.Script()
	traditional := script == language.MustParseScript("Hant")

	switch regionStr {
	case "TW":
		if traditional {
			return "tw2sp"
		}
		return "s2twp"
	case "HK", "MO":
		if traditional {
			return "hk2s"
		}
		return "s2hk"
	}
	if traditional {
		return "t2s"
	}
	return "s2t"
}
