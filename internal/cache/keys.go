package cache

import "strings"

// Prefix namespaces every key this service writes.
const Prefix = "eduperfil"

// KindActiveProfile holds the JSON of a student's active profile.
const KindActiveProfile = "perfil_activo"

// Key builds "eduperfil:<kind>:<id>", with the non-empty variants appended
// as one "_"-joined segment.
func Key(kind, id string, variants ...string) string {
	key := Prefix + ":" + kind + ":" + id
	var parts []string
	for _, v := range variants {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		key += ":" + strings.Join(parts, "_")
	}
	return key
}

// ActiveProfileKey is the key of a student's cached active profile.
func ActiveProfileKey(studentID string) string {
	return Key(KindActiveProfile, studentID)
}
