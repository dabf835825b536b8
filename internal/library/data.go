package library

var resources = []Resource{
	{
		ID:          "1",
		Title:       "The Power of Habit: Why We Do What We Do in Life and Business",
		Description: "A book about how habits work and how to transform them in your life and business.",
		Type:        TypeBook,
		URL:         "https://example.com/power-of-habit",
		Tags:        []string{"habits", "productivity", "psychology"},
		Timeframe:   LongTerm,
		Difficulty:  Medium,
		Rating:      4.5,
	},
	{
		ID:          "2",
		Title:       "How to Set SMART Goals",
		Description: "A comprehensive guide to setting Specific, Measurable, Achievable, Relevant, and Time-bound goals.",
		Type:        TypeArticle,
		URL:         "https://example.com/smart-goals",
		Tags:        []string{"goals", "planning", "productivity"},
		Timeframe:   ShortTerm,
		Difficulty:  Easy,
		Rating:      4.2,
	},
	{
		ID:          "3",
		Title:       "Public Speaking Masterclass",
		Description: "Learn the art of public speaking from world-renowned experts.",
		Type:        TypeCourse,
		URL:         "https://example.com/public-speaking",
		Tags:        []string{"communication", "career", "confidence"},
		Timeframe:   LongTerm,
		Difficulty:  Hard,
		Rating:      4.8,
	},
	{
		ID:          "4",
		Title:       "How to Learn Any Language in 6 Months",
		Description: "Practical techniques for rapid language acquisition.",
		Type:        TypeVideo,
		URL:         "https://example.com/language-learning",
		Tags:        []string{"languages", "learning", "education"},
		Timeframe:   ShortTerm,
		Difficulty:  Medium,
		Rating:      4.3,
	},
	{
		ID:          "5",
		Title:       "Pomodoro Timer",
		Description: "A simple tool to boost productivity using the Pomodoro Technique.",
		Type:        TypeTool,
		URL:         "https://example.com/pomodoro",
		Tags:        []string{"productivity", "time-management", "focus"},
		Timeframe:   ShortTerm,
		Difficulty:  Easy,
		Rating:      4.0,
	},
	{
		ID:          "6",
		Title:       "Mindfulness Meditation for Beginners",
		Description: "A gentle introduction to mindfulness practices for stress reduction and mental clarity.",
		Type:        TypeVideo,
		URL:         "https://example.com/mindfulness",
		Tags:        []string{"meditation", "wellness", "mental-health"},
		Timeframe:   LongTerm,
		Difficulty:  Easy,
		Rating:      4.6,
	},
}

var insights = []Insight{
	{
		ID:          "1",
		Title:       "The Power of Consistent Small Steps",
		Description: "Research shows that consistent small actions lead to significant progress over time. Rather than setting overwhelming goals, focus on daily micro-habits that move you forward.",
		Category:    CategoryProductivity,
		ActionSteps: []string{
			"Identify one small action you can take daily toward your goal",
			"Track your consistency using a habit tracker",
			"Celebrate small wins to maintain motivation",
		},
	},
	{
		ID:          "2",
		Title:       "Overcoming Procrastination Through Visualization",
		Description: "Visualization techniques can help overcome procrastination by creating a mental image of the completed task and the positive feelings associated with it.",
		Category:    CategoryMotivation,
		ActionSteps: []string{
			"Spend 5 minutes visualizing yourself completing the task",
			"Focus on the feelings of accomplishment and relief",
			"Break the task into smaller, more manageable parts",
		},
	},
	{
		ID:          "3",
		Title:       "The Feynman Technique for Deeper Learning",
		Description: "Named after physicist Richard Feynman, this technique involves explaining concepts in simple terms to identify gaps in your understanding and reinforce learning.",
		Category:    CategoryLearning,
		ActionSteps: []string{
			"Choose a concept you want to learn",
			"Explain it in simple terms as if teaching a child",
			"Identify gaps in your explanation and revisit the material",
			"Simplify technical language and create analogies",
		},
	},
	{
		ID:          "4",
		Title:       "Mindfulness for Goal Achievement",
		Description: "Practicing mindfulness can improve focus, reduce stress, and help maintain clarity about your goals and priorities.",
		Category:    CategoryWellness,
		ActionSteps: []string{
			"Start with 5 minutes of daily meditation",
			"Practice single-tasking instead of multitasking",
			"Take mindful breaks throughout your day",
		},
	},
	{
		ID:          "5",
		Title:       "Strategic Networking for Career Growth",
		Description: "Building meaningful professional relationships is often more valuable than technical skills alone for long-term career advancement.",
		Category:    CategoryCareer,
		ActionSteps: []string{
			"Identify 5 key people in your industry to connect with",
			"Schedule one coffee meeting or virtual chat per week",
			"Focus on providing value before asking for favors",
			"Maintain regular contact with your network",
		},
	},
	{
		ID:          "6",
		Title:       "The 2-Minute Rule for Productivity",
		Description: "If a task takes less than 2 minutes to complete, do it immediately rather than scheduling it for later. This prevents small tasks from accumulating.",
		Category:    CategoryProductivity,
		ActionSteps: []string{
			"Identify quick tasks in your daily routine",
			"Complete them immediately when they arise",
			"Keep a list of completed 2-minute tasks to see your progress",
		},
	},
}
