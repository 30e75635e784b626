package tarot

// Card is a single major arcana card with its upright and reversed meanings.
type Card struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Meaning         string `json:"meaning"`
	ReversedMeaning string `json:"reversed_meaning"`
}

// MajorArcana is the fixed 22-card deck drawn from.
var MajorArcana = []Card{
	{0, "The Fool", "New beginnings, innocence, spontaneity", "Recklessness, taken advantage of"},
	{1, "The Magician", "Manifestation, resourcefulness, power", "Manipulation, poor planning"},
	{2, "The High Priestess", "Intuition, sacred knowledge, divine feminine", "Secrets, disconnected from intuition"},
	{3, "The Empress", "Fertility, femininity, beauty, nature", "Creative block, dependence on others"},
	{4, "The Emperor", "Authority, structure, control, fatherhood", "Tyranny, rigidity"},
	{5, "The Hierophant", "Spiritual wisdom, tradition, conformity", "Personal beliefs, freedom"},
	{6, "The Lovers", "Love, harmony, relationships, values alignment", "Self-love, disharmony"},
	{7, "The Chariot", "Direction, control, willpower, success", "Lack of control, aggression"},
	{8, "Strength", "Courage, patience, control, compassion", "Self-doubt, weakness"},
	{9, "The Hermit", "Soul-searching, introspection, being alone", "Isolation, loneliness"},
	{10, "Wheel of Fortune", "Good luck, karma, life cycles, destiny", "Bad luck, resistance to change"},
	{11, "Justice", "Justice, fairness, truth, cause and effect", "Unfairness, lack of accountability"},
	{12, "The Hanged Man", "Pause, surrender, letting go, new perspectives", "Delays, resistance"},
	{13, "Death", "Endings, change, transformation, transition", "Resistance to change, stagnation"},
	{14, "Temperance", "Balance, moderation, patience, purpose", "Imbalance, excess"},
	{15, "The Devil", "Shadow self, attachment, addiction, restriction", "Releasing limiting beliefs"},
	{16, "The Tower", "Sudden change, upheaval, chaos, revelation", "Fear of change, avoiding disaster"},
	{17, "The Star", "Hope, faith, purpose, renewal, spirituality", "Lack of faith, despair"},
	{18, "The Moon", "Illusion, fear, anxiety, subconscious", "Release of fear, repressed emotion"},
	{19, "The Sun", "Positivity, fun, warmth, success, vitality", "Inner child issues, negativity"},
	{20, "Judgement", "Judgement, rebirth, inner calling, absolution", "Self-doubt, refusal of self-examination"},
	{21, "The World", "Completion, integration, accomplishment", "Seeking closure, short-cuts"},
}

// SpreadSizes maps spread names to the number of cards drawn.
var SpreadSizes = map[string]int{
	"single":       1,
	"three_card":   3,
	"celtic_cross": 10,
}
