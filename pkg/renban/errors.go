package renban

import "fmt"

// Kind 展开错误的类别。
type Kind int

const (
	// KindInvalidArgs 缺少必需的分隔符 ("-"、"[" 或 "]")。
	KindInvalidArgs Kind = iota + 1
	// KindInvalidRange 区间终点小于起点。
	KindInvalidRange
	// KindParseError 区间边界不是合法整数。
	KindParseError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgs:
		return "invalid args"
	case KindInvalidRange:
		return "invalid range"
	case KindParseError:
		return "parse error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error 展开过程中的错误，Err 仅在 KindParseError 时携带底层解析错误。
type Error struct {
	Kind Kind
	Err  error
}

// 可配合 errors.Is 按类别匹配。
var (
	ErrInvalidArgs  = &Error{Kind: KindInvalidArgs}
	ErrInvalidRange = &Error{Kind: KindInvalidRange}
	ErrParse        = &Error{Kind: KindParseError}
)

func (e *Error) Error() string {
	if e.Err != nil {
		return "renban: " + e.Kind.String() + ": " + e.Err.Error()
	}

	return "renban: " + e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is 只比较类别，使 errors.Is(err, ErrParse) 对任何解析错误成立。
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

func parseError(err error) error {
	return &Error{Kind: KindParseError, Err: err}
}
