package utils

import (
	"strings"
	"unicode/utf8"
)

// DebugGlyphWidth ebitenutil 调试字体的字符宽度（像素）
const DebugGlyphWidth = 6

// LineHeight 页面正文的行高（像素）
const LineHeight = 16

// DebugTextWidth 测量调试字体下文本的宽度
func DebugTextWidth(textStr string) float64 {
	return float64(utf8.RuneCountInString(textStr) * DebugGlyphWidth)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - maxWidth: 最大宽度（像素）
//   - measure: 文本宽度测量函数，为 nil 时使用 DebugTextWidth
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制按字符断行
func WrapText(textStr string, maxWidth float64, measure func(string) float64) []string {
	if measure == nil {
		measure = DebugTextWidth
	}
	if textStr == "" || maxWidth <= 0 || measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(textStr) {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}
		if measure(testLine) <= maxWidth {
			currentLine = testLine
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽，按字符拆开
		for measure(word) > maxWidth {
			cut := fitPrefix(word, maxWidth, measure)
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		currentLine = word
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// fitPrefix 返回能放入 maxWidth 的最长前缀字节长度，至少一个字符
func fitPrefix(word string, maxWidth float64, measure func(string) float64) int {
	cut := 0
	for cut < len(word) {
		_, size := utf8.DecodeRuneInString(word[cut:])
		if cut > 0 && measure(word[:cut+size]) > maxWidth {
			break
		}
		cut += size
	}
	return cut
}
