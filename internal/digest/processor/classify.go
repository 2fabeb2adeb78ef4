package processor

import "strings"

// DefaultEmoji 没有任何规则命中时的兜底标记
const DefaultEmoji = "📈"

// categoryRule 关键词组 -> emoji，命中任意一个关键词即命中该条规则
type categoryRule struct {
	keywords []string
	emoji    string
}

// 规则顺序就是优先级，不能重排：
// 比如 "에너지" 落在电池规则里，挪动顺序会悄悄改变分类结果。
var categoryRules = []categoryRule{
	{[]string{"로봇"}, "🤖"},
	{[]string{"반도체"}, "💽"},
	{[]string{"제약", "바이오"}, "💊"},
	{[]string{"자동차", "자율주행", "모빌리티"}, "🚗"},
	{[]string{"조선"}, "🚢"},
	{[]string{"우주", "항공"}, "🚀"},
	{[]string{"화장품", "뷰티"}, "💄"},
	{[]string{"신재생", "풍력", "태양광"}, "🌀"},
	{[]string{"배터리", "2차전지", "이차전지", "에너지"}, "⚡"},
	{[]string{"게임"}, "🎮"},
	{[]string{"AI", "인공지능"}, "🧠"},
	{[]string{"정치", "정책", "총선"}, "🏛️"},
	{[]string{"건설", "재건"}, "🏗️"},
	{[]string{"방산", "전쟁"}, "⚔️"},
	{[]string{"경영", "인수"}, "🤝"},
	{[]string{"금융", "투자"}, "💰"},
	{[]string{"보안", "정보", "해킹", "드론"}, "🔒"},
	{[]string{"개별"}, "✨"},
	{[]string{"신규상장"}, "🔥"},
}

// ClassifyCategory 把分类标签映射到 emoji，第一条命中的规则生效
func ClassifyCategory(label string) string {
	for _, r := range categoryRules {
		for _, kw := range r.keywords {
			if strings.Contains(label, kw) {
				return r.emoji
			}
		}
	}
	return DefaultEmoji
}
