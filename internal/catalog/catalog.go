// Package catalog holds the static quiz data: the ordered question list and
// the per-culture-type presentation metadata. Everything here is immutable
// after process start.
package catalog

import "github.com/culturelens/culturelens-backend/internal/model"

// Questions returns the full question catalog in display order. Callers must
// not mutate the returned slice or its elements.
func Questions() []model.Question {
	return questions
}

var questions = []model.Question{
	{
		ID:   "1",
		Text: "When your team faces a tight deadline, what approach does your company typically encourage?",
		Options: []model.Option{
			{Value: model.CultureTagResults, Text: "Push through with overtime and extra effort", Subtitle: "Focus on meeting the deadline at all costs"},
			{Value: model.CultureCaring, Text: "Check in with team members' wellbeing first", Subtitle: "Ensure work-life balance while finding solutions"},
			{Value: model.CultureLearning, Text: "Use it as a learning opportunity", Subtitle: "Analyze what led to the situation and improve processes"},
			{Value: model.CultureOrder, Text: "Follow established escalation procedures", Subtitle: "Stick to the proper channels and protocols"},
		},
	},
	{
		ID:   "2",
		Text: "How are important decisions typically made in your organization?",
		Options: []model.Option{
			{Value: model.CultureAuthority, Text: "Top-down from senior leadership", Subtitle: "Clear hierarchy and chain of command"},
			{Value: model.CultureCaring, Text: "Through collaborative team discussions", Subtitle: "Everyone's input is valued and considered"},
			{Value: model.CulturePurpose, Text: "Based on alignment with company mission", Subtitle: "Decisions support the greater purpose"},
			{Value: model.CultureSafety, Text: "After careful risk assessment", Subtitle: "Minimize potential negative impacts"},
		},
	},
	{
		ID:   "3",
		Text: "What happens when someone makes a mistake at your company?",
		Options: []model.Option{
			{Value: model.CultureLearning, Text: "It's treated as a learning opportunity", Subtitle: "Focus on understanding and improvement"},
			{Value: model.CultureCaring, Text: "Support is provided to help them recover", Subtitle: "Emphasis on personal growth and wellbeing"},
			{Value: model.CultureOrder, Text: "There are clear consequences and procedures", Subtitle: "Established protocols are followed"},
			{Value: model.CultureAuthority, Text: "Management addresses it directly", Subtitle: "Leadership takes control of the situation"},
		},
	},
	{
		ID:   "4",
		Text: "How does your company approach innovation and new ideas?",
		Options: []model.Option{
			{Value: model.CultureLearning, Text: "Experimentation is encouraged", Subtitle: "Try new things and learn from failures"},
			{Value: model.CultureEnjoyment, Text: "Creative brainstorming sessions", Subtitle: "Fun, energetic idea generation"},
			{Value: model.CultureAuthority, Text: "Innovation comes from leadership", Subtitle: "Senior management drives new initiatives"},
			{Value: model.CultureSafety, Text: "Thorough testing before implementation", Subtitle: "Minimize risks with careful validation"},
		},
	},
	{
		ID:   "5",
		Text: "What motivates employees most in your organization?",
		Options: []model.Option{
			{Value: model.CulturePurpose, Text: "Making a meaningful impact", Subtitle: "Contributing to something bigger than themselves"},
			{Value: model.CultureTagResults, Text: "Achieving ambitious goals", Subtitle: "Recognition for high performance"},
			{Value: model.CultureCaring, Text: "Personal growth and development", Subtitle: "Feeling valued and supported"},
			{Value: model.CultureEnjoyment, Text: "Having fun at work", Subtitle: "Positive, energetic work environment"},
		},
	},
	{
		ID:   "6",
		Text: "How does your company handle conflicts between team members?",
		Options: []model.Option{
			{Value: model.CultureCaring, Text: "Mediated discussions to understand all perspectives", Subtitle: "Focus on maintaining relationships"},
			{Value: model.CultureOrder, Text: "Follow HR policies and procedures", Subtitle: "Structured approach to conflict resolution"},
			{Value: model.CultureAuthority, Text: "Management makes the final decision", Subtitle: "Clear direction from leadership"},
			{Value: model.CulturePurpose, Text: "Refocus on shared company mission", Subtitle: "Unite around common goals"},
		},
	},
	{
		ID:   "7",
		Text: "What's the typical work environment like in your office?",
		Options: []model.Option{
			{Value: model.CultureEnjoyment, Text: "Lively and energetic", Subtitle: "Music, games, and social activities"},
			{Value: model.CultureOrder, Text: "Quiet and structured", Subtitle: "Clear workspaces and minimal distractions"},
			{Value: model.CultureCaring, Text: "Collaborative and supportive", Subtitle: "Open communication and helping each other"},
			{Value: model.CultureLearning, Text: "Dynamic and intellectually stimulating", Subtitle: "Constant learning and knowledge sharing"},
		},
	},
	{
		ID:   "8",
		Text: "How does your company approach goal setting?",
		Options: []model.Option{
			{Value: model.CultureTagResults, Text: "Aggressive, stretch targets", Subtitle: "Push for maximum performance"},
			{Value: model.CulturePurpose, Text: "Align with company mission and values", Subtitle: "Goals that create meaningful impact"},
			{Value: model.CultureOrder, Text: "Clear, measurable objectives", Subtitle: "Structured planning and tracking"},
			{Value: model.CultureLearning, Text: "Focus on growth and development", Subtitle: "Goals that build capabilities"},
		},
	},
	{
		ID:   "9",
		Text: "What happens when your company exceeds expectations?",
		Options: []model.Option{
			{Value: model.CultureEnjoyment, Text: "Big celebrations and rewards", Subtitle: "Team parties and fun recognition"},
			{Value: model.CultureTagResults, Text: "Set even higher targets", Subtitle: "Use success as motivation for more"},
			{Value: model.CultureCaring, Text: "Appreciate everyone's contributions", Subtitle: "Personal recognition for each team member"},
			{Value: model.CultureLearning, Text: "Analyze what worked well", Subtitle: "Document lessons learned for future success"},
		},
	},
	{
		ID:   "10",
		Text: "How does your company communicate important updates?",
		Options: []model.Option{
			{Value: model.CultureAuthority, Text: "Top-down announcements", Subtitle: "Clear messages from leadership"},
			{Value: model.CultureCaring, Text: "Open forums for discussion", Subtitle: "Everyone gets to ask questions and share thoughts"},
			{Value: model.CultureOrder, Text: "Formal, documented communications", Subtitle: "Official channels and proper procedures"},
			{Value: model.CulturePurpose, Text: "Connect to company mission", Subtitle: "Explain how changes support our values"},
		},
	},
	{
		ID:   "11",
		Text: "What's the approach to work-life balance in your company?",
		Options: []model.Option{
			{Value: model.CultureCaring, Text: "Strong emphasis on personal wellbeing", Subtitle: "Flexible schedules and mental health support"},
			{Value: model.CultureTagResults, Text: "Balance is secondary to achieving goals", Subtitle: "Work hard to deliver results"},
			{Value: model.CultureEnjoyment, Text: "Make work so fun it doesn't feel like work", Subtitle: "Blend personal enjoyment with professional tasks"},
			{Value: model.CultureOrder, Text: "Clear boundaries between work and personal time", Subtitle: "Structured policies and expectations"},
		},
	},
	{
		ID:   "12",
		Text: "How does your company approach risk-taking?",
		Options: []model.Option{
			{Value: model.CultureSafety, Text: "Very cautious and risk-averse", Subtitle: "Extensive planning to avoid problems"},
			{Value: model.CultureLearning, Text: "Calculated risks for learning", Subtitle: "Accept failures as part of growth"},
			{Value: model.CultureTagResults, Text: "Bold risks for big rewards", Subtitle: "High risk, high reward mentality"},
			{Value: model.CultureAuthority, Text: "Risk decisions made by leadership", Subtitle: "Senior management controls major risks"},
		},
	},
	{
		ID:   "13",
		Text: "What drives hiring decisions at your company?",
		Options: []model.Option{
			{Value: model.CultureCaring, Text: "Cultural fit and interpersonal skills", Subtitle: "People who will work well with the team"},
			{Value: model.CultureTagResults, Text: "Track record of high performance", Subtitle: "Proven ability to deliver results"},
			{Value: model.CultureLearning, Text: "Potential for growth and development", Subtitle: "Curiosity and willingness to learn"},
			{Value: model.CulturePurpose, Text: "Alignment with company mission", Subtitle: "Shared values and commitment to our cause"},
		},
	},
	{
		ID:   "14",
		Text: "How does your company handle customer complaints?",
		Options: []model.Option{
			{Value: model.CultureCaring, Text: "Empathetic, personal attention", Subtitle: "Make customers feel heard and valued"},
			{Value: model.CultureOrder, Text: "Systematic process and documentation", Subtitle: "Follow established procedures"},
			{Value: model.CultureTagResults, Text: "Quick resolution to maintain reputation", Subtitle: "Efficient problem-solving"},
			{Value: model.CultureLearning, Text: "Analyze for process improvements", Subtitle: "Use feedback to prevent future issues"},
		},
	},
	{
		ID:   "15",
		Text: "What's the typical meeting style in your organization?",
		Options: []model.Option{
			{Value: model.CultureOrder, Text: "Structured with clear agendas", Subtitle: "Formal format with documented outcomes"},
			{Value: model.CultureCaring, Text: "Inclusive discussions where everyone speaks", Subtitle: "Ensure all voices are heard"},
			{Value: model.CultureAuthority, Text: "Led by senior members", Subtitle: "Clear leadership and decision-making"},
			{Value: model.CultureEnjoyment, Text: "Dynamic and engaging", Subtitle: "Interactive with creative elements"},
		},
	},
	{
		ID:   "16",
		Text: "How does your company approach professional development?",
		Options: []model.Option{
			{Value: model.CultureLearning, Text: "Continuous learning opportunities", Subtitle: "Regular training, conferences, and courses"},
			{Value: model.CultureCaring, Text: "Personalized development plans", Subtitle: "Individual attention to each person's growth"},
			{Value: model.CultureTagResults, Text: "Development tied to performance goals", Subtitle: "Skills building that drives business results"},
			{Value: model.CultureAuthority, Text: "Leadership development programs", Subtitle: "Focus on building management capabilities"},
		},
	},
	{
		ID:   "17",
		Text: "What's the company's approach to change management?",
		Options: []model.Option{
			{Value: model.CultureOrder, Text: "Careful planning and phased rollouts", Subtitle: "Structured change with clear processes"},
			{Value: model.CultureCaring, Text: "Support employees through transitions", Subtitle: "Focus on people's emotional needs during change"},
			{Value: model.CultureAuthority, Text: "Leadership drives change initiatives", Subtitle: "Top-down implementation"},
			{Value: model.CultureLearning, Text: "Iterative approach with continuous feedback", Subtitle: "Adapt and improve based on what we learn"},
		},
	},
	{
		ID:   "18",
		Text: "How does your company measure success?",
		Options: []model.Option{
			{Value: model.CultureTagResults, Text: "Financial metrics and KPIs", Subtitle: "Revenue, profit, and performance indicators"},
			{Value: model.CulturePurpose, Text: "Impact on mission and values", Subtitle: "Meaningful contribution to our cause"},
			{Value: model.CultureCaring, Text: "Employee satisfaction and retention", Subtitle: "How well we take care of our people"},
			{Value: model.CultureSafety, Text: "Risk mitigation and stability", Subtitle: "Avoiding problems and maintaining security"},
		},
	},
}
