// Package validate holds the fixed request schemas. Validation is fail-fast:
// the first violated rule is reported and the rest are not evaluated.
package validate

// Error identifies the failing field together with a client-facing message.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(field, msg string) *Error {
	return &Error{Field: field, Message: msg}
}

func Register(username, password string) *Error {
	if username == "" {
		return fail("username", "Username is required")
	}
	if len(username) < 3 {
		return fail("username", "Username must be at least 3 characters long")
	}
	if password == "" {
		return fail("password", "Password is required")
	}
	if len(password) < 6 {
		return fail("password", "Password must be at least 6 characters long")
	}
	return nil
}

func Login(username, password string) *Error {
	if username == "" {
		return fail("username", "Username is required")
	}
	if password == "" {
		return fail("password", "Password is required")
	}
	return nil
}

func CreatePost(title, content string) *Error {
	if title == "" {
		return fail("title", "Title is required")
	}
	if len(title) < 3 {
		return fail("title", "Title must be at least 3 characters long")
	}
	if content == "" {
		return fail("content", "Content is required")
	}
	if len(content) < 10 {
		return fail("content", "Content must be at least 10 characters long")
	}
	return nil
}

// Like takes a pointer so that an absent field is distinguishable from false.
func Like(like *bool) *Error {
	if like == nil {
		return fail("like", `"like" is required`)
	}
	return nil
}
