package insight

// Prompt templates sent to the completion API. The wording deliberately asks
// for a 0-1 rating so the numeric extractor has something to find even when
// the model ignores formatting instructions.

const courseImportancePrompt = `Analyze the importance of this course for the given career goals:
Course: %s - %s
Career Goals: %s

Rate the importance from 0 to 1 and explain why.`

const projectImpactPrompt = `Analyze this project's impact and complexity:
Title: %s
Description: %s
Technologies: %s

Rate the impact from 0 to 1 and explain why.`

const careerRecommendationsPrompt = `Based on this student's profile, suggest 3 career paths with explanations:
Major: %s
Skills: %s
Courses: %s
Projects: %s
Goals: %s

For each career path, include:
1. Job title
2. Required skills they already have
3. Skills they need to develop
4. Recommended next steps`
