package domain

// Идентификаторы профильных систем.
const (
	System520  = "520"
	System744  = "744"
	System16   = "16"
	System8020 = "8020"
)

// ProfileSystem — запись каталога профильных систем.
type ProfileSystem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

var profileSystems = []ProfileSystem{
	{ID: System520, Name: "Sistema 520", Available: true},
	{ID: System744, Name: "Sistema 744", Available: true},
	{ID: System16, Name: "Sistema 16", Available: false},
	{ID: System8020, Name: "Sistema 80-20", Available: false},
}

// ListProfileSystems возвращает копию каталога в порядке отображения.
func ListProfileSystems() []ProfileSystem {
	out := make([]ProfileSystem, len(profileSystems))
	copy(out, profileSystems)
	return out
}

// FindProfileSystem ищет систему по точному совпадению id.
func FindProfileSystem(id string) (ProfileSystem, bool) {
	for _, s := range profileSystems {
		if s.ID == id {
			return s, true
		}
	}
	return ProfileSystem{}, false
}
