package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus everything wrong
// or suspicious about it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Classify.ExtraTechCompanies = trimList(out.Classify.ExtraTechCompanies)

	// ---- Validation rules ----

	if len(out.Schools) == 0 {
		res.addErr("schools is empty: nothing to scrape")
	}
	seenSchool := map[string]bool{}
	for i, s := range out.Schools {
		name := strings.TrimSpace(s.Name)
		out.Schools[i].Name = name
		if name == "" {
			res.addErr("schools[%d].name is required", i)
			continue
		}
		if seenSchool[strings.ToLower(name)] {
			res.addErr("duplicate school %q", name)
		}
		seenSchool[strings.ToLower(name)] = true

		if len(s.URLs) == 0 {
			res.addErr("school %q has no urls", name)
		}
		for _, raw := range s.URLs {
			u, err := url.Parse(raw)
			if err != nil || u.Scheme == "" || u.Host == "" {
				res.addErr("school %q has invalid url %q", name, raw)
			}
		}
	}

	// pacing sanity
	if out.Fetch.ReqPerSec < 0 {
		res.addErr("fetch.req_per_sec must be >= 0")
	} else if out.Fetch.ReqPerSec > 5 {
		res.addWarn("fetch.req_per_sec is high (%.1f) and may trip bot detection on department sites.", out.Fetch.ReqPerSec)
	}
	if out.Fetch.TimeoutSeconds < 0 {
		res.addErr("fetch.timeout_seconds must be >= 0")
	}
	if out.Fetch.Concurrency < 0 {
		res.addErr("fetch.concurrency must be >= 0")
	}

	if out.Enrich.DelaySeconds < 0 {
		res.addErr("enrich.delay_seconds must be >= 0")
	}

	return out, res
}
