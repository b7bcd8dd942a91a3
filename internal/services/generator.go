package services

import (
	"context"
	"errors"
	"fmt"
)

// TextGenerator is a hosted text-generation model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrEmptyGeneration is returned when the model answers with no text.
var ErrEmptyGeneration = errors.New("model returned empty text")

// BuildChatPrompt wraps the user's message in the assistant instructions.
func BuildChatPrompt(message string) string {
	return fmt.Sprintf(chatPromptTemplate, message)
}

const chatPromptTemplate = `You are a helpful AI assistant. Analyze the user's message and respond appropriately.

User message: "%s"

Instructions:
- If the user is asking for learning resources, tutorials, or guides about a specific topic, provide a comprehensive response with structured content
- Include specific mentions of popular learning platforms like youtube.com, udemy.com, coursera.org, figma.com, medium.com, dev.to, freecodecamp.org, etc.
- Format your response with clear sections using HTML headings and lists
- For learning requests, organize content into sections like:
  * Quick Start Guides and Crash Courses
  * Video Tutorials
  * Step-by-Step Guides
  * Key Concepts to Focus On
  * Practice Resources
- Mention specific course names, tutorial series, and learning paths
- Include time estimates and difficulty levels where relevant
- For casual conversation, respond normally without educational structure

Format as HTML with:
- <h3> for section headings
- <ul> and <li> for bullet points
- <strong> for emphasis
- <p> for paragraphs

Example for learning requests:
<h3>Quick Start Guides and Crash Courses:</h3>
<ul>
<li><strong>Figma Crash Course:</strong> This comprehensive tutorial on youtube.com covers all essential Figma features for landing page design in under 2 hours.</li>
<li><strong>Landing Page Design Bootcamp:</strong> Available on udemy.com, this course focuses specifically on creating high-converting landing pages.</li>
</ul>`
