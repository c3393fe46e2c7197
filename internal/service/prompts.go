package service

import (
	"fmt"
	"strings"
)

// Prompt builders are pure string rendering; inputs are validated by callers.

func QuestionAnswerPrompt(role, experience, topicsToFocus string, numberOfQuestions int) string {
	var b strings.Builder
	b.WriteString("You are an AI trained to generate technical interview questions and answers.\n\n")
	b.WriteString("Task:\n")
	fmt.Fprintf(&b, "- Role: %s\n", role)
	fmt.Fprintf(&b, "- Candidate Experience: %s years\n", experience)
	fmt.Fprintf(&b, "- Focus Topics: %s\n", topicsToFocus)
	fmt.Fprintf(&b, "- Write %d interview questions.\n", numberOfQuestions)
	b.WriteString(`- For each question, assign a difficulty level: "easy", "medium", or "hard".
- Mix the difficulty levels randomly — roughly equal distribution.
- For each question, generate a detailed but beginner-friendly answer.
- If the answer needs a code example, add a small code block inside.
- Keep formatting very clean.
- Return a pure JSON array like:
[
  {
    "question": "Question here?",
    "answer": "Answer here.",
    "difficulty": "easy"
  },
  ...
]
Important: Do NOT add any extra text. Only return valid JSON.
`)
	return b.String()
}

func ConceptExplainPrompt(question string) string {
	var b strings.Builder
	b.WriteString("You are a fun, friendly AI teacher who explains concepts using lots of emojis and simple language.\n\n")
	b.WriteString("Task:\n\n")
	b.WriteString("- Explain the following interview question and its concept in depth as if you're teaching a complete beginner.\n")
	fmt.Fprintf(&b, "- Question: %q\n", question)
	b.WriteString(`- Use plenty of emojis throughout the explanation to make it visual and engaging
- Use simple, everyday analogies that anyone can understand
- Break complex ideas into small, easy-to-digest bullet points
- Use headings with emojis for each section
- After the explanation, provide a short and clear title that summarizes the concept
- If the explanation includes a code example, provide a small code block.
- Keep the tone casual, encouraging, and fun!
- Return the result as a valid JSON object in the following format:

{
  "title": "Short title here",
  "explanation": "Explanation here"
}

Important: Do NOT add any extra text outside the JSON format. Only return valid JSON. Ensure any newlines inside strings are escaped as \n, and double quotes inside strings are escaped as \". The output must be strictly valid JSON.
`)
	return b.String()
}

func EvaluateAnswerPrompt(question, userAnswer string) string {
	var b strings.Builder
	b.WriteString("You are an AI acting as an expert technical interviewer.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Evaluate the candidate's answer to the interview question.\n")
	fmt.Fprintf(&b, "- Question: %q\n", question)
	fmt.Fprintf(&b, "- Candidate's Answer: %q\n", userAnswer)
	b.WriteString(`- Provide constructive feedback, highlighting what was good and what could be improved.
- Give a numeral score out of 10.
- Return the result as a valid JSON object in the following format:

{
  "score": 8,
  "feedback": "Detailed feedback here.",
  "strengths": ["Strength 1", "Strength 2"],
  "improvements": ["Idea for improvement"]
}

Important: Do NOT add any extra text outside the JSON format. Only return valid JSON.
`)
	return b.String()
}
