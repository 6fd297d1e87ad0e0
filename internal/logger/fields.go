package logger

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/internship-finder/internal/profile"
)

const (
	FieldEducation = "profile_education"
	FieldLocation  = "profile_location"
	FieldSkills    = "profile_skills"
	FieldInterests = "profile_interests"
	// FieldSession identifies a single wizard run.
	FieldSession = "session_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ProfileFields describes a profile. Empty values are left out.
func ProfileFields(p profile.Profile) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldEducation, Value: p.Education},
		StringField{Key: FieldLocation, Value: p.Location},
	)
	if len(p.Skills) > 0 {
		fields = append(fields, zap.Strings(FieldSkills, p.Skills))
	}
	if len(p.Interests) > 0 {
		fields = append(fields, zap.Strings(FieldInterests, p.Interests))
	}
	return fields
}

func WithProfileFields(logger *zap.Logger, p profile.Profile) *zap.Logger {
	return WithFields(logger, ProfileFields(p)...)
}
