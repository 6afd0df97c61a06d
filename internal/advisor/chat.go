package advisor

import (
	"strings"

	"github.com/google/uuid"
)

// chatRule maps keyword substrings to a canned reply. Rules are checked
// in order; the first rule with any matching keyword wins.
type chatRule struct {
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{
		keywords: []string{"price", "cost"},
		reply:    "Our tiles range from ₹45 to ₹250 per sq.ft depending on the material (Ceramic vs Vitrified). Would you like to see a specific category?",
	},
	{
		keywords: []string{"bathroom", "toilet"},
		reply:    "For bathrooms, I highly recommend 'Anti-Skid' or 'Matte Finish' tiles to prevent slipping when wet. 300x300mm is a popular size.",
	},
	{
		keywords: []string{"kitchen"},
		reply:    "Kitchens look great with Dado tiles (highlighters) above the counter. Glossy finishes are easier to clean oil splashes from.",
	},
	{
		keywords: []string{"living"},
		reply:    "Large format (600x1200mm) GVT tiles are trending for living rooms as they give a spacious, seamless look.",
	},
	{
		keywords: []string{"thank"},
		reply:    "You're welcome! Let me know if you need help with anything else.",
	},
}

const (
	chatGreeting = "Hello! I'm your Jaithindal AI Assistant. Ask me anything about tiles, maintenance, or design trends!"
	chatFallback = "That's an interesting question. While I'm still learning, I'd suggest visiting our 'Tile Collection' page to explore more options or contacting our sales team for specific queries."
)

// Message is one entry in a chat transcript.
type Message struct {
	ID     string `json:"id"`
	Sender string `json:"sender"` // "user" or "ai"
	Text   string `json:"text"`
}

// Chatbot answers with ordered keyword-substring matching over a fixed
// rule table. No fuzzy matching, no state beyond the transcript.
type Chatbot struct {
	messages []Message
}

func NewChatbot() *Chatbot {
	return &Chatbot{
		messages: []Message{{ID: uuid.NewString(), Sender: "ai", Text: chatGreeting}},
	}
}

// Reply computes the canned response for a query without recording it.
func Reply(query string) string {
	q := strings.ToLower(query)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.reply
			}
		}
	}
	return chatFallback
}

// Send appends the user message and the advisor's reply to the transcript
// and returns the reply message. Blank input is ignored.
func (c *Chatbot) Send(text string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}

	c.messages = append(c.messages, Message{ID: uuid.NewString(), Sender: "user", Text: text})
	reply := Message{ID: uuid.NewString(), Sender: "ai", Text: Reply(text)}
	c.messages = append(c.messages, reply)
	return reply, true
}

// Messages returns the transcript, greeting first.
func (c *Chatbot) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}
