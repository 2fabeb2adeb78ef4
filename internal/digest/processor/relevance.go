package processor

import "strings"

// TitlePhrase 报告标题短语，同时也是头部裁剪的分界标记
const TitlePhrase = "몽당연필의 장마감 시황"

// DisclaimerMarker 免责声明起始标记，之后的内容全部丢弃
const DisclaimerMarker = "[주의사항]"

// DefaultKeywords 默认的相关性关键词集合，可被配置覆盖
func DefaultKeywords() []string {
	return []string{TitlePhrase, "상승률TOP30", "TOP30 정보 작성자", "상승률 TOP30"}
}

// IsRelevant 判断消息是否属于目标报告类型。
// 只做精确子串匹配，不做模糊匹配。
func IsRelevant(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
