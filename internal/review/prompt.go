package review

import "fmt"

const reviewSystemPrompt = `You are an AI code analysis tool. Analyze the code you are given and provide feedback on its efficiency, style, and potential errors. Be specific and helpful.`

func buildReviewPrompt(code, language string) string {
	return fmt.Sprintf("Language: %s\nCode:\n%s", language, code)
}
