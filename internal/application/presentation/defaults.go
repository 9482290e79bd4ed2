package presentation

import (
	"fmt"

	"eduslide-api/internal/domain/entity"
)

// FallbackSlideContent 生成确定性的占位幻灯片内容。
// 相同的主题与序号总是产出相同结果，保证整体流程不因模型故障中断。
func FallbackSlideContent(topic string, index int) entity.SlideContent {
	return entity.SlideContent{
		Heading: fmt.Sprintf("Understanding %s", topic),
		Bullets: []string{
			fmt.Sprintf("Key idea %d about %s", index, topic),
			fmt.Sprintf("Why %s matters", topic),
			fmt.Sprintf("A real-world example of %s", topic),
			fmt.Sprintf("Common misconceptions about %s", topic),
		},
		Summary:  fmt.Sprintf("This slide introduces an important aspect of %s.", topic),
		Keywords: []string{topic, "education", "learning"},
	}
}

// FallbackQuizContent 生成确定性的占位测验内容
func FallbackQuizContent(topic string) entity.QuizContent {
	return entity.QuizContent{
		Question: fmt.Sprintf("What is %s?", topic),
		Options: []string{
			fmt.Sprintf("A fundamental concept related to %s", topic),
			"An unrelated idea",
			"A historical footnote",
			"None of the above",
		},
		CorrectIndex: 0,
	}
}
