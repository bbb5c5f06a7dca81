// Package renban 提供方括号数字区间的连番展开。
//
// 输入字符串中的每个 [from-to] 会被替换为区间内的每个整数，
// 多个区间按笛卡尔积展开，最左侧的区间变化最慢。
//
// # 语义说明
//
//  1. 区间在第一个 "-" 处切分，左右两侧按 32 位有符号整数解析
//  2. 左侧字面量以 '0' 开头时，所有数字按左侧字面量长度补零
//  3. 只取第一个 '[' 与第一个 ']'，不做括号配对
//  4. 仅检查首个展开结果是否仍含 '['，据此决定是否继续递归
//
// # 快速开始
//
//	list, err := renban.ExpandAll("img[01-03].jpg")
//	// img01.jpg, img02.jpg, img03.jpg
//
// 解析失败时原样返回输入：
//
//	list := renban.ExpandOrEcho("plain")
//	// plain
//
// 详见 [ExpandAll] 与 [ParseRange] 文档。
package renban
