package domain

// File is an attachment stored in a ChurchTools module.
type File struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	FileURL  string `json:"fileUrl"`
	Filename string `json:"filename,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// FileDomain identifies the module object files are attached to,
// e.g. {"song_arrangement", "42"}.
type FileDomain struct {
	Type       string
	Identifier string
}

// Supported file domain types.
var FileDomainTypes = []string{
	"avatar", "groupimage", "logo", "attatchments", "html_template", "service",
	"song_arrangement", "importtable", "person", "familyavatar",
}

// IsValid reports whether the domain type is known. Wiki domains are
// addressed as "wiki_<n>" and accepted by prefix.
func (d FileDomain) IsValid() bool {
	if d.Identifier == "" {
		return false
	}
	if len(d.Type) > 5 && d.Type[:5] == "wiki_" {
		return true
	}
	for _, t := range FileDomainTypes {
		if t == d.Type {
			return true
		}
	}
	return false
}
