package placement

// Code identifies the outcome of compiling or placing one descriptor.
type Code int

const (
	CodeUnknown        Code = -1
	Success            Code = 0
	Failure            Code = 1
	ErrItem            Code = 84
	ErrArg1NotObject   Code = 85
	ErrArg2NotBoolean  Code = 86
	ErrArg3NotNumber   Code = 87
	ErrArg4NotNumber   Code = 88
	ErrArg5NotString   Code = 89
	ErrArg6NotString   Code = 90
	ErrKindUnknown     Code = 91
	ErrNameTaken       Code = 92
	ErrParentNotFound  Code = 93
	ErrParentNotLayout Code = 94
)

var catalog = map[Code]string{
	CodeUnknown:        "Error: The code you have provided is not referenced in this error code database",
	Success:            "success",
	Failure:            "error",
	ErrItem:            "An unknown error has occurred while processing your item",
	ErrArg1NotObject:   "Error: the provided item in position 1 is not an object",
	ErrArg2NotBoolean:  "Error: the provided item in position 2 is not a boolean",
	ErrArg3NotNumber:   "Error: the provided item in position 3 is not a number",
	ErrArg4NotNumber:   "Error: the provided item in position 4 is not a whole unsigned number",
	ErrArg5NotString:   "Error: the provided item in position 5 is not a string",
	ErrArg6NotString:   "Error: the provided item in position 6 is not a string",
	ErrKindUnknown:     "Error: the provided item in position 4 is not a valid number option (see description for more information)",
	ErrNameTaken:       "Error: the provided name in position 5 is already taken",
	ErrParentNotFound:  "Error: the provided parent layout/effect in position 6 was not found",
	ErrParentNotLayout: "Error: the provided parent layout/effect in position 6 is not a layout nor an effect",
}

// Describe returns the human readable message for code. Codes missing from
// the catalog describe as CodeUnknown.
func Describe(code Code) string {
	if msg, ok := catalog[code]; ok {
		return msg
	}
	return catalog[CodeUnknown]
}

// OK reports whether the code signals success.
func (c Code) OK() bool {
	return c == Success
}

// Known reports whether the code has its own catalog entry.
func (c Code) Known() bool {
	_, ok := catalog[c]
	return ok
}

func (c Code) String() string {
	return Describe(c)
}

// Error makes a failing Code usable as an error.
func (c Code) Error() string {
	return Describe(c)
}
