package editor

import "strings"

// Identifier prefixes shared between the controller and its host. An
// exercise "hello" has backing field "code-hello", run trigger "run-hello"
// and output panel "output-hello".
const (
	FieldPrefix   = "code-"
	TriggerPrefix = "run-"
	OutputPrefix  = "output-"
)

// FieldID derives the backing-field id for an exercise
func FieldID(exerciseID string) string {
	return FieldPrefix + exerciseID
}

// TriggerID derives the run-trigger id for an exercise
func TriggerID(exerciseID string) string {
	return TriggerPrefix + exerciseID
}

// OutputID derives the output-panel id for an exercise
func OutputID(exerciseID string) string {
	return OutputPrefix + exerciseID
}

// ExerciseID recovers the exercise id from a backing-field id
func ExerciseID(fieldID string) (string, bool) {
	if !strings.HasPrefix(fieldID, FieldPrefix) || len(fieldID) == len(FieldPrefix) {
		return "", false
	}
	return fieldID[len(FieldPrefix):], true
}

// DecodeInitial decodes a declared initial-content attribute. Newlines and
// tabs travel escaped so the attribute stays a single line; a backslash not
// starting a known escape is kept as-is.
func DecodeInitial(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// EncodeInitial is the inverse of DecodeInitial
func EncodeInitial(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
