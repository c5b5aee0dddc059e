// Package exam defines the immutable data model shared by the whole
// application: exam records researched by the AI, generated questions,
// recorded answers, and practice-session results.
package exam

// OptionCount is the number of alternatives every question carries (A-E).
const OptionCount = 5

// Question is a single multiple-choice question. Immutable once created.
type Question struct {
	ID                 string   `json:"id"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Explanation        string   `json:"explanation"`
	Topic              string   `json:"topic"`
}

// Valid reports whether the question is structurally sound: five options
// and a correct index that addresses one of them.
func (q Question) Valid() bool {
	return len(q.Options) == OptionCount &&
		q.CorrectOptionIndex >= 0 &&
		q.CorrectOptionIndex < len(q.Options)
}

// UserAnswer records one confirmed answer. IsCorrect is computed at answer
// time and never recomputed afterwards.
type UserAnswer struct {
	QuestionID          string `json:"questionId"`
	SelectedOptionIndex int    `json:"selectedOptionIndex"`
	IsCorrect           bool   `json:"isCorrect"`
}

// SessionStatus marks whether a session still has unanswered questions.
type SessionStatus string

const (
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusCompleted  SessionStatus = "COMPLETED"
)

// Session is one practice-session result. It is created when a session
// starts and merged back into its owning Record's history on every update.
type Session struct {
	ID             string        `json:"id"`
	ExamTitle      string        `json:"examTitle"`
	Date           string        `json:"date"`
	Topic          string        `json:"topic"`
	Score          int           `json:"score"`
	TotalQuestions int           `json:"totalQuestions"`
	Questions      []Question    `json:"questions"`
	UserAnswers    []UserAnswer  `json:"userAnswers"`
	Status         SessionStatus `json:"status"`
}

// Subject is one exam subject with its syllabus topics.
type Subject struct {
	Name          string   `json:"name"`
	Importance    string   `json:"importance"` // "High" | "Medium" | "Low"
	Topics        []string `json:"topics"`
	QuestionCount string   `json:"questionCount,omitempty"`
}

// Strategy is a phase-specific piece of preparation advice.
type Strategy struct {
	Phase  string `json:"phase"`
	Advice string `json:"advice"`
}

// Source is a web source the exam analysis was grounded on.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Record holds everything known about one exam, keyed by title. It owns
// the practice-session history for that exam.
type Record struct {
	Title                   string            `json:"title"`
	Organization            string            `json:"organization"`
	EstimatedVacancies      string            `json:"estimatedVacancies"`
	RegistrationPeriod      string            `json:"registrationPeriod"`
	Fee                     string            `json:"fee"`
	ExamDate                string            `json:"examDate"`
	Summary                 string            `json:"summary"`
	PreviousContestAnalysis string            `json:"previousContestAnalysis"`
	AvailableRoles          []string          `json:"availableRoles,omitempty"`
	SelectedRole            string            `json:"selectedRole,omitempty"`
	Subjects                []Subject         `json:"subjects"`
	Strategies              []Strategy        `json:"strategies"`
	CompletedTopics         []string          `json:"completedTopics,omitempty"`
	CachedContent           map[string]string `json:"cachedContent,omitempty"`
	UserNotes               map[string]string `json:"userNotes,omitempty"`
	SimulationHistory       []Session         `json:"simulationHistory,omitempty"`
}

// TopicCompleted reports whether topic is in the record's completed set.
func (r *Record) TopicCompleted(topic string) bool {
	for _, t := range r.CompletedTopics {
		if t == topic {
			return true
		}
	}
	return false
}

// ToggleTopic adds topic to the completed set, or removes it if present.
func (r *Record) ToggleTopic(topic string) {
	for i, t := range r.CompletedTopics {
		if t == topic {
			r.CompletedTopics = append(r.CompletedTopics[:i], r.CompletedTopics[i+1:]...)
			return
		}
	}
	r.CompletedTopics = append(r.CompletedTopics, topic)
}

// CacheContent stores generated study material for a topic.
func (r *Record) CacheContent(topic, content string) {
	if r.CachedContent == nil {
		r.CachedContent = make(map[string]string)
	}
	r.CachedContent[topic] = content
}

// SaveNote stores the user's personal note for a topic.
func (r *Record) SaveNote(topic, note string) {
	if r.UserNotes == nil {
		r.UserNotes = make(map[string]string)
	}
	r.UserNotes[topic] = note
}

// SimConfig describes how a simulation should be generated.
type SimConfig struct {
	QuestionCount  int    `json:"questionCount"`
	Topic          string `json:"topic"`
	ContextContent string `json:"contextContent,omitempty"`
}

// GeneralTopic is the config value meaning "all subjects".
const GeneralTopic = "General"

// StudyContent is one generated lesson in the app's markdown subset.
type StudyContent struct {
	Subject string `json:"subject"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PastExam is a historical exam reconstructed by the AI from web sources.
type PastExam struct {
	Title     string     `json:"title"`
	Year      string     `json:"year"`
	Org       string     `json:"org"`
	Questions []Question `json:"questions"`
}
