package logger

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/seqtils/seqtils/logger/priv"
	"github.com/sirupsen/logrus"
)

// getMergedEntryFromArgs makes a merged logger from the first StructuredError found in the given arguments
//
// Errors wrapping a StructuredError are searched too. A StructuredError given directly is replaced by its inner error
// in args, since its fields become log fields.
func getMergedEntryFromArgs(parent *logrus.Entry, args []interface{}) *logrus.Entry {
	for i, a := range args {
		err, ok := a.(error)
		if !ok {
			continue
		}
		var serr *StructuredError
		if !errors.As(err, &serr) {
			continue
		}
		if a == interface{}(serr) {
			args[i] = serr.Unwrap()
		}
		return serr.getEntry(parent)
	}

	return parent
}

// StructuredError is an error carrying log fields, which are elevated to the fields of the log entry when logged
//
// The "component" field is renamed to "errorComponent" to keep the component of the logger logging it
type StructuredError struct {
	fields map[string]interface{}
	err    error
}

// NewStructuredError creates a StructuredError with a map of fields (to be copied) and an inner error
func NewStructuredError(srcFields map[string]interface{}, err error) *StructuredError {
	return &StructuredError{
		fields: lo.MapKeys(srcFields, func(_ interface{}, key string) string {
			if key == priv.LabelComponent {
				return "errorComponent"
			}
			return key
		}),
		err: err,
	}
}

// FieldsOf returns the fields of the first StructuredError in the chain of err, or nil if there is none
func FieldsOf(err error) map[string]interface{} {
	var serr *StructuredError
	if !errors.As(err, &serr) {
		return nil
	}
	return lo.Assign(serr.fields)
}

func (se *StructuredError) Error() string {
	strList := buildSprintPrefixes(se.fields)
	if se.err != nil {
		strList = append(strList, se.err.Error())
	}
	return strings.Join(strList, " ")
}

func (se *StructuredError) Unwrap() error {
	return se.err
}

func (se *StructuredError) getEntry(parent *logrus.Entry) *logrus.Entry {
	if len(se.fields) == 0 {
		return parent
	}

	return parent.WithFields(se.fields)
}
