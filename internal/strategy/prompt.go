package strategy

import (
	"fmt"
	"strings"
)

const systemPrompt = "당신은 프로그래밍 용어와 주석을 한국어로 번역하는 전문가입니다. 컨텍스트에 맞는 자연스러운 한국어로 번역해주세요."

const (
	commentPrompt = "다음 프로그래밍 주석을 한국어로 자연스럽게 번역해주세요. 주석 기호는 유지하고 내용만 번역하세요:\n\n\"%s\"\n\n번역된 결과만 출력해주세요."
	termPrompt    = "다음 영어 단어나 구문을 프로그래밍 컨텍스트에 맞는 한국어로 번역해주세요:\n\n\"%s\"\n\n번역된 결과만 출력해주세요."
)

// translationPrompt builds the user prompt for the LLM strategies. Text
// carrying comment markers gets the comment prompt.
func translationPrompt(text string) string {
	if strings.Contains(text, "//") || strings.Contains(text, "/*") || strings.Contains(text, "*") {
		return fmt.Sprintf(commentPrompt, text)
	}
	return fmt.Sprintf(termPrompt, text)
}
