package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRelevant_TitlePhrase(t *testing.T) {
	text := "안녕하세요. 몽당연필의 장마감 시황 전해드립니다."
	assert.True(t, IsRelevant(text, DefaultKeywords()))
}

func TestIsRelevant_Top30Variants(t *testing.T) {
	cases := []string{
		"오늘의 상승률TOP30 정리입니다",
		"상승률 TOP30 계속",
		"TOP30 정보 작성자입니다",
	}
	for _, text := range cases {
		assert.True(t, IsRelevant(text, DefaultKeywords()), text)
	}
}

func TestIsRelevant_NoMatch(t *testing.T) {
	assert.False(t, IsRelevant("오늘 점심 뭐 먹지", DefaultKeywords()))
}

func TestIsRelevant_EmptyText(t *testing.T) {
	assert.False(t, IsRelevant("", DefaultKeywords()))
}

func TestIsRelevant_ExactSubstringOnly(t *testing.T) {
	// 近似写法不算命中，只认精确子串
	assert.False(t, IsRelevant("상승률 TOP 30", DefaultKeywords()))
}

func TestIsRelevant_CustomKeywords(t *testing.T) {
	assert.True(t, IsRelevant("이세무사 마감 브리핑", []string{"이세무사"}))
}
