package presentation

import (
	"encoding/json"
	"strings"

	"eduslide-api/internal/domain/entity"
)

// Origin 标记内容来源：模型解析成功或回退生成
type Origin string

const (
	OriginModel    Origin = "model"
	OriginFallback Origin = "fallback"
)

// extractCandidate 从模型原始输出中切出最可能的 JSON 对象文本。
// 依次处理围栏代码块、语言标注前缀和对象边界外的散文。
func extractCandidate(raw string) string {
	candidate := raw
	if parts := strings.Split(raw, "```"); len(parts) > 1 {
		for _, p := range parts {
			if strings.Contains(p, "{") {
				candidate = p
				break
			}
		}
	}
	candidate = strings.TrimSpace(candidate)
	if len(candidate) >= 4 && strings.EqualFold(candidate[:4], "json") {
		candidate = strings.TrimSpace(candidate[4:])
	}
	start := strings.Index(candidate, "{")
	end := strings.LastIndex(candidate, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return candidate[start : end+1]
}

// ParseSlideContent 解析模型输出为幻灯片内容。
// 解码失败时返回整体回退记录；解码成功但个别字段缺失或类型不符时
// 逐字段回退，整体仍计为模型来源。任何输入都能得到可用结果。
func ParseSlideContent(raw, topic string, index int) (entity.SlideContent, Origin) {
	candidate := extractCandidate(raw)
	if candidate == "" {
		return FallbackSlideContent(topic, index), OriginFallback
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(candidate), &m); err != nil {
		return FallbackSlideContent(topic, index), OriginFallback
	}

	fallback := FallbackSlideContent(topic, index)
	content := entity.SlideContent{
		Heading:  stringField(m, "heading", fallback.Heading),
		Bullets:  stringListField(m, "bullets", fallback.Bullets),
		Summary:  stringField(m, "summary", fallback.Summary),
		Keywords: stringListField(m, "keywords", fallback.Keywords),
	}
	return content, OriginModel
}

// ParseQuizContent 解析模型输出为测验内容，规则与幻灯片解析一致。
// 选项不足四个时用回退选项补齐，多于四个时截断。
func ParseQuizContent(raw, topic string) (entity.QuizContent, Origin) {
	candidate := extractCandidate(raw)
	if candidate == "" {
		return FallbackQuizContent(topic), OriginFallback
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(candidate), &m); err != nil {
		return FallbackQuizContent(topic), OriginFallback
	}

	fallback := FallbackQuizContent(topic)
	quiz := entity.QuizContent{
		Question:     stringField(m, "question", fallback.Question),
		Options:      stringListField(m, "options", fallback.Options),
		CorrectIndex: indexField(m, "correct_index"),
	}
	for len(quiz.Options) < entity.QuizOptionCount {
		quiz.Options = append(quiz.Options, fallback.Options[len(quiz.Options)])
	}
	if len(quiz.Options) > entity.QuizOptionCount {
		quiz.Options = quiz.Options[:entity.QuizOptionCount]
	}
	if quiz.CorrectIndex < 0 || quiz.CorrectIndex >= entity.QuizOptionCount {
		quiz.CorrectIndex = 0
	}
	return quiz, OriginModel
}

func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return fallback
}

// stringListField 兼容字符串数组和单个字符串两种形态
func stringListField(m map[string]any, key string, fallback []string) []string {
	switch v := m[key].(type) {
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	}
	return fallback
}

// indexField JSON 数字统一解码为 float64，仅接受整数值
func indexField(m map[string]any, key string) int {
	if v, ok := m[key].(float64); ok && v == float64(int(v)) {
		return int(v)
	}
	return 0
}
