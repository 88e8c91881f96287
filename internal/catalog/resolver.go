package catalog

import "regexp"

var separatorRuns = regexp.MustCompile(`[-_]+`)

// spacedName turns a raw instructor identifier into a readable name by
// replacing separator runs with spaces.
func spacedName(raw string) string {
	if raw == "" {
		return ""
	}
	return separatorRuns.ReplaceAllString(raw, " ")
}

// displayNameSource produces one candidate display name for an instructor.
// A source returns "" when it has nothing to contribute.
type displayNameSource func(profile *TeacherProfile, raw rawCourse, key string) string

// displayNameChain is the precedence order for resolving an instructor's
// display name: registry name, registry display name, the course file's raw
// instructor name with separators spaced out, then the normalized key itself.
var displayNameChain = []displayNameSource{
	func(p *TeacherProfile, _ rawCourse, _ string) string {
		if p != nil {
			return p.Name
		}
		return ""
	},
	func(p *TeacherProfile, _ rawCourse, _ string) string {
		if p != nil {
			return p.DisplayName
		}
		return ""
	},
	func(_ *TeacherProfile, raw rawCourse, _ string) string {
		return spacedName(raw.InstructorName)
	},
	func(_ *TeacherProfile, _ rawCourse, key string) string {
		return key
	},
}

// resolveDisplayName walks the chain and returns the first non-empty
// candidate, falling back to a generic label so the result is never empty.
func resolveDisplayName(profile *TeacherProfile, raw rawCourse, key string) string {
	for _, source := range displayNameChain {
		if name := source(profile, raw, key); name != "" {
			return name
		}
	}
	return "Instructor"
}

// imageSource produces one candidate avatar URL for an instructor.
type imageSource func(profile *TeacherProfile, raw rawCourse) string

// imageChain is the precedence order for resolving an instructor's avatar:
// the registry image first, then the image embedded in the course file.
var imageChain = []imageSource{
	func(p *TeacherProfile, _ rawCourse) string {
		if p != nil {
			return p.Image
		}
		return ""
	},
	func(_ *TeacherProfile, raw rawCourse) string {
		return raw.ImageOfInstructor
	},
}

// resolveTeacherImage walks the image chain; an empty result means no avatar.
func resolveTeacherImage(profile *TeacherProfile, raw rawCourse) string {
	for _, source := range imageChain {
		if img := source(profile, raw); img != "" {
			return img
		}
	}
	return ""
}
