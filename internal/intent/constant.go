package intent

import "kuma-assistant/pkg/launcher"

const (
	// MemoryReadLimit is how many memories the memory-read intent lists.
	MemoryReadLimit = 8
	// TaskReadLimit is how many tasks the task-read intent lists.
	TaskReadLimit = 10

	TokenRemember    = "remember"
	PhraseSearchFor  = "search for "
	DefaultCityLabel = "your area"
)

var (
	MemoryReadPhrases = []string{"what do you remember", "what do you know", "what did i tell you"}
	TaskWritePhrases  = []string{"add task", "remind me to"}
	TaskClearPhrases  = []string{"clear tasks", "clear my tasks", "clear all tasks", "delete all tasks", "delete my tasks", "remove all tasks"}
	TaskReadPhrases   = []string{"show tasks", "show my tasks", "list tasks", "list my tasks", "what are my tasks", "my tasks", "read tasks"}
	TimePhrases       = []string{"what time", "the time", "time is it", "current time", "time now"}
	DatePhrases       = []string{"what day", "which day", "day is it", "day is today"}
	JokePhrases       = []string{"make me laugh", "something funny"}
	WeatherPhrases    = []string{"weather", "temperature"}
)

// Replies.
const (
	ReplyRememberClarify = "What would you like me to remember?"
	ReplyRemembered      = "Okay, I'll remember that: %s"
	ReplyNothingStored   = "I have nothing remembered yet."
	ReplyMemoryHeader    = "Here's what I remember:"
	ReplyTaskClarify     = "What task should I add?"
	ReplyTaskAdded       = "Task added: %s"
	ReplyNoTasks         = "You have no tasks."
	ReplyTaskHeader      = "Your tasks:"
	ReplyTasksCleared    = "All tasks cleared."
	ReplyTime            = "It's %s."
	ReplyDate            = "Today is %s."
	ReplyWeather         = "It's currently %s in %s."
	ReplyWeatherFailed   = "Sorry, I couldn't get the weather for %s right now."
	ReplySearchClarify   = "What should I search for?"
	ReplySearching       = "Searching the web for %s."

	TimeLayout = "3:04 PM"
	DateLayout = "Monday, January 2, 2006"

	SearchURL = "https://www.google.com/search?q="
)

// Jokes is the joke intent's pool.
var Jokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"I told my computer I needed a break, and it said it would go to sleep.",
	"Why did the developer go broke? Because he used up all his cache.",
	"There are 10 kinds of people in the world: those who understand binary and those who don't.",
	"Why was the JavaScript developer sad? Because he didn't know how to null his feelings.",
}

// DefaultShortcuts is the built-in phrase-to-action table. Longer phrases come first.
var DefaultShortcuts = []Shortcut{
	{Phrase: "open youtube", Kind: launcher.KindURL, Target: "https://www.youtube.com", Reply: "Opening YouTube."},
	{Phrase: "open google", Kind: launcher.KindURL, Target: "https://www.google.com", Reply: "Opening Google."},
	{Phrase: "open github", Kind: launcher.KindURL, Target: "https://github.com", Reply: "Opening GitHub."},
	{Phrase: "open gmail", Kind: launcher.KindURL, Target: "https://mail.google.com", Reply: "Opening Gmail."},
	{Phrase: "open vs code", Kind: launcher.KindApp, Target: "code", Reply: "Opening VS Code."},
	{Phrase: "open vscode", Kind: launcher.KindApp, Target: "code", Reply: "Opening VS Code."},
	{Phrase: "open notepad", Kind: launcher.KindApp, Target: "notepad", Reply: "Opening Notepad."},
	{Phrase: "open calculator", Kind: launcher.KindApp, Target: "calculator", Reply: "Opening the calculator."},
	{Phrase: "open downloads", Kind: launcher.KindFolder, Target: "~/Downloads", Reply: "Opening your Downloads folder."},
	{Phrase: "open documents", Kind: launcher.KindFolder, Target: "~/Documents", Reply: "Opening your Documents folder."},
}
