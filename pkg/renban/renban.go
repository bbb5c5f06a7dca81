package renban

import (
	"fmt"
	"strconv"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 区间解析
// ═══════════════════════════════════════════════════════════════════════════

// ParseRange 将 "<left>-<right>" 解析为升序的数字字符串序列。
//
// 在第一个 "-" 处切分，因此 "-3--1" 的左侧为空串，返回 [ErrParse]。
// left 以 '0' 开头时按 len(left) 补零，否则输出最短十进制表示。
//
// 错误：
//   - 没有 "-" - [ErrInvalidArgs]
//   - 任一侧不是整数 - [ErrParse]，可通过 errors.As 取得 *strconv.NumError
//   - right < left - [ErrInvalidRange]
func ParseRange(token string) ([]string, error) {
	left, right, ok := strings.Cut(token, "-")
	if !ok {
		return nil, ErrInvalidArgs
	}

	from, err := strconv.ParseInt(left, 10, 32)
	if err != nil {
		return nil, parseError(err)
	}
	to, err := strconv.ParseInt(right, 10, 32)
	if err != nil {
		return nil, parseError(err)
	}
	if to < from {
		return nil, ErrInvalidRange
	}

	width := 0
	if strings.HasPrefix(left, "0") {
		width = len(left)
	}

	out := make([]string, 0, to-from+1)
	for n := from; n <= to; n++ {
		if width > 0 {
			out = append(out, fmt.Sprintf("%0*d", width, n))
			continue
		}
		out = append(out, strconv.FormatInt(n, 10))
	}

	return out, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 单层展开
// ═══════════════════════════════════════════════════════════════════════════

// ExpandOnce 展开 s 中的第一个方括号区间。
//
// '[' 与 ']' 各取首次出现的位置，不做配对；
// ']' 出现在 '[' 之前时视为缺少分隔符。
// 区间解析错误原样返回。
func ExpandOnce(s string) ([]string, error) {
	lb := strings.IndexByte(s, '[')
	if lb < 0 {
		return nil, ErrInvalidArgs
	}
	rb := strings.IndexByte(s, ']')
	if rb < 0 || rb < lb {
		return nil, ErrInvalidArgs
	}

	prefix, middle, suffix := s[:lb], s[lb+1:rb], s[rb+1:]
	numbers, err := ParseRange(middle)
	if err != nil {
		return nil, err
	}

	out := make([]string, len(numbers))
	for i, n := range numbers {
		out[i] = prefix + n + suffix
	}

	return out, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 递归展开
// ═══════════════════════════════════════════════════════════════════════════

// ExpandAll 递归展开 s 中的全部方括号区间。
//
// 每层展开第一个区间；若首个结果不再含 '['，整层结果直接返回，
// 否则对每个结果递归并按顺序拼接。任一层失败则整体失败，不返回部分结果。
// 不含方括号的输入返回 [ErrInvalidArgs]。
func ExpandAll(s string) ([]string, error) {
	list, err := ExpandOnce(s)
	if err != nil {
		return nil, err
	}
	// 只看首个元素，兄弟结果的括号结构视为一致
	if !strings.Contains(list[0], "[") {
		return list, nil
	}

	var out []string
	for _, item := range list {
		sub, err := ExpandAll(item)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}

	return out, nil
}

// ExpandOrEcho 调用 [ExpandAll]，失败时返回仅包含原始输入的切片。
func ExpandOrEcho(s string) []string {
	list, err := ExpandAll(s)
	if err != nil {
		return []string{s}
	}

	return list
}
