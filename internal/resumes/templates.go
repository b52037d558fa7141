package resumes

// templateNames is the fixed set of recognized template variants, in
// display order.
var templateNames = []string{
	"template1", "template2", "template3", "template4",
	"template5", "template6", "template7", "template8",
}

// KnownTemplate reports whether name is one of the eight variants.
func KnownTemplate(name string) bool {
	for _, t := range templateNames {
		if t == name {
			return true
		}
	}
	return false
}

// TemplateNames lists the variants in display order.
func TemplateNames() []string {
	return append([]string(nil), templateNames...)
}
