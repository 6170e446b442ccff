package method

// Method is a recognized request method. Methods outside of this enum are still valid
// request tokens and are passed through the environment as they are, they just result
// in Unknown.
type Method uint8

const (
	Unknown Method = iota
	GET
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH}

var tokens = [...]string{
	Unknown: "",
	GET:     "get",
	HEAD:    "head",
	POST:    "post",
	PUT:     "put",
	DELETE:  "delete",
	CONNECT: "connect",
	OPTIONS: "options",
	TRACE:   "trace",
	PATCH:   "patch",
}

// String returns the method in its lowercased form, as it's stored in the environment.
func (m Method) String() string {
	if int(m) >= len(tokens) {
		return ""
	}

	return tokens[m]
}

// Parse recognizes a lowercased method token.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "get" {
			return GET
		} else if str == "put" {
			return PUT
		}
	case 4:
		if str == "post" {
			return POST
		} else if str == "head" {
			return HEAD
		}
	case 5:
		if str == "patch" {
			return PATCH
		} else if str == "trace" {
			return TRACE
		}
	case 6:
		if str == "delete" {
			return DELETE
		}
	case 7:
		if str == "connect" {
			return CONNECT
		} else if str == "options" {
			return OPTIONS
		}
	}

	return Unknown
}
