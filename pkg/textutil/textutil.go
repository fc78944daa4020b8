// Package textutil 无状态的文本辅助函数
package textutil

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultSummaryLength Truncate的默认长度
const DefaultSummaryLength = 100

var turkishMonths = [...]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// FormatDate 按土耳其月份名格式化日期，如 "29 Ekim 2023"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), turkishMonths[t.Month()-1], t.Year())
}

// ValidISBN13 校验ISBN-13校验位，忽略连字符和空格
func ValidISBN13(isbn string) bool {
	digits := make([]int, 0, 13)
	for _, r := range isbn {
		switch {
		case r == '-' || r == ' ':
			continue
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		default:
			return false
		}
	}
	if len(digits) != 13 {
		return false
	}

	sum := 0
	for i, d := range digits[:12] {
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return (10-sum%10)%10 == digits[12]
}

// Truncate 超过n个字符时截断并追加 "..."，n<=0时使用默认长度
func Truncate(s string, n int) string {
	if n <= 0 {
		n = DefaultSummaryLength
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// MaskEmail 保留本地部分首尾字符，中间替换为*
// 本地部分不超过2个字符或不是邮箱格式时原样返回
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return email
	}
	local := []rune(email[:at])
	if len(local) <= 2 {
		return email
	}
	return string(local[0]) + strings.Repeat("*", len(local)-2) + string(local[len(local)-1]) + email[at:]
}

// PasswordStrength 检查密码强度，返回是否通过以及未满足的规则
func PasswordStrength(password string) (bool, []string) {
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	var unmet []string
	if utf8.RuneCountInString(password) < 8 {
		unmet = append(unmet, "min_length")
	}
	if !upper {
		unmet = append(unmet, "uppercase")
	}
	if !lower {
		unmet = append(unmet, "lowercase")
	}
	if !digit {
		unmet = append(unmet, "digit")
	}
	if !symbol {
		unmet = append(unmet, "symbol")
	}
	return len(unmet) == 0, unmet
}

var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes 以1024为进制格式化字节数，如 "1.50 KB"
func FormatBytes(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, byteUnits[unit])
}
