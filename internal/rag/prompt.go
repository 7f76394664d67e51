package rag

import "strings"

// promptInstruction defines the answer persona and the grounding rule:
// answer only from the supplied context, fall back to a fixed sentence when
// the answer is not there, and list each distinct source URL exactly once
// under a SOURCES heading.
const promptInstruction = `You are a very enthusiastic support representative who loves to help people! Given the following sections and their source URLs from the documentation sources, answer the question using only that information, outputted in markdown format. Include code snippets if relevant. If you are unsure and the answer is not explicitly written in the documentation, say "Sorry, I don't know how to help with that." If the context sections include source URLs include them under the SOURCES heading at the end of your response. Always include all of the relevant source urls from the context sections. Never list a URL more than once. Never include URLs that are not in the context sections.`

// promptExample is a worked question/answer pair demonstrating the expected
// markdown output and SOURCES formatting.
const promptExample = `Context sections:
Next.js is a React framework for creating production-ready web applications. It provides a variety of methods for fetching data, a built-in router, and a Next.js Compiler for transforming and minifying JavaScript code. It also includes a built-in Image Component and Automatic Image Optimization for resizing, optimizing, and serving images in modern formats.
SOURCE: nextjs.org/docs/faq

Question:
what is nextjs?

Answer as markdown, including related code snippets if available:
Next.js is a framework for building production-ready web applications using React. It offers various data fetching options, comes equipped with an integrated router, and features a Next.js compiler for transforming and minifying JavaScript. Additionally, it has an inbuilt Image Component and Automatic Image Optimization that helps resize, optimize, and deliver images in modern formats.

` + "```js" + `
function HomePage() {
  return <div>Welcome to Next.js!</div>
}

export default HomePage
` + "```" + `

SOURCES:
https://nextjs.org/docs/faq`

// BuildPrompt fills the fixed completion template: instruction, worked
// example, assembled context, the user's question, and the markdown-answer
// suffix. Pure template concatenation; identical inputs yield byte-identical
// prompts.
func BuildPrompt(contextText, question string) string {
	var prompt strings.Builder

	prompt.WriteString(promptInstruction)
	prompt.WriteString("\n\n")
	prompt.WriteString(promptExample)
	prompt.WriteString("\n\nContext sections:\n")
	prompt.WriteString(contextText)
	prompt.WriteString("\n\nQuestion: \"\"\"\n")
	prompt.WriteString(question)
	prompt.WriteString("\n\"\"\"\n\nAnswer as markdown, including related code snippets if available:\n")

	return prompt.String()
}
