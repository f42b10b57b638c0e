package constant

const (
	ShopName = "Chow Sing Sing Hardware"

	CommandStart    = "start"
	CommandSearch   = "search"
	CommandQuestion = "question"

	ButtonProducts  = "products"
	ButtonQuestions = "questions"
	ButtonNearby    = "nearby"
	ButtonPromo     = "promo"
	ButtonTop       = "top"
)

type MenuButton struct {
	Label string
	Data  string
}

// MainMenu is rendered as a single inline keyboard row, left to right.
var MainMenu = []MenuButton{
	{Label: "🌟Products", Data: ButtonProducts},
	{Label: "⏰Q&A", Data: ButtonQuestions},
	{Label: "📍Nearby", Data: ButtonNearby},
	{Label: "💖Promo", Data: ButtonPromo},
	{Label: "💯Top", Data: ButtonTop},
}

// CategoryLabels is indexed by category_type - 1.
var CategoryLabels = []string{
	"Drilling & fastening tools",
	"Cutting tools",
	"Surface finishing tools",
	"Other professional tools",
}

const CategoryUnknownLabel = "Uncategorised"

const (
	WelcomeMessage  = "✨✨ Welcome to the " + ShopName + " enquiry bot. Tap a shortcut below to get shop information."
	RecallMessage   = "🤗 Anything else I can help you with?"
	NeedHelpMessage = "💖 Hi, do you need any of these services?"

	PromptProductSearch  = "⌨ Please enter a <u>product name</u> (a price range is optional), e.g. makita / makita 800 2000"
	PromptQuestionSearch = "⌨ Please enter a <u>keyword</u> for your question, e.g. warranty"

	// RequestLocationFormat takes the radius in km.
	RequestLocationFormat = "Tap the button below to share your location and find shops within %s km:"
	ShareLocationLabel    = "📍Share my location"
	MapLinkLabel          = "View on Google Maps"
	MapLinkFormat         = "https://maps.google.com/?q=%s,%s"

	TipsSearch    = "😇 Tip: search products with\n/search <name> [min price] [max price]\ne.g. /search makita 800 2000"
	TipsQuestions = "😇 Tip: search questions with\n/question <keyword>\ne.g. /question warranty"
	TipsNearby    = "😇 Tip: tap 📍Nearby and share your location to find shops close to you"

	TipEnterProductName     = "🙅‍♀️ Please enter a product name"
	TipMissingPrice         = "🙅‍♀️ Please enter both a minimum and a maximum price"
	TipInvalidMinPrice      = "🙅‍♀️ The minimum price must be a whole number, 0 or more"
	TipInvalidMaxPrice      = "🙅‍♀️ The maximum price must be a whole number, 0 or more"
	TipMaxBelowMin          = "🙅‍♀️ The maximum price cannot be lower than the minimum price"
	TipNoProducts           = "🙅‍♀️ No matching products found"
	TipEnterQuestionKeyword = "🙅‍♀️ Please enter a question keyword"
	TipNoQuestions          = "🙅‍♀️ No matching questions found"
	TipInvalidLocation      = "🙅‍♀️ That location could not be read"
	TipNoTopProducts        = "🙅‍♀️ There are no products to rank yet"
	TipTryAgain             = "🙅‍♀️ Something went wrong, please try again later"

	// NoShopsNearbyFormat and NearbyHeaderFormat take the radius in km.
	NoShopsNearbyFormat = "🙅‍♀️ There is no shop of ours within %s km of you."
	NearbyHeaderFormat  = "Shops near the given location (<= %s km):"

	TopProductsHeader     = "🌟✨ Our hottest products ✨🌟\n(ranked by number of searches)\n"
	TopProductLineFormat  = "\n👍No.%d: %s\nSearches: %d\n"
	ProductMessageFormat  = "📍Name: %s\n🌟Model: %s\n🎉Price: HKD %d\n💸%s\n✨Category: %s\n"
	ShopMessageFormat     = "📍Shop: %s\n🌟Address: %s\n🎉Phone: %s\n✨Hours: %s\n"
	QuestionMessageFormat = "📍Question: %s\n🌟Answer: %s\n"

	PromoMessage = "🌟✨ " + ShopName + " 10th anniversary sale! ✨🌟\n\n" +
		"💖 Exclusive offer: 10% off all regular-priced items!\n\n" +
		"📍 Valid at every branch and for mobile orders\n\n" +
		"💸 Pay with PayMe to get the discount\n\n" +
		"⏰ Offer period: 1 July - 1 August (during opening hours)\n\n" +
		"🎉 Come and celebrate our tenth year with us! 🎉"
)
