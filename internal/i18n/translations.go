package i18n

import "kisanmitra/internal/domain"

const (
	en = domain.English
	hi = domain.Hindi
	te = domain.Telugu
)

// translations maps key -> language -> text.
// Only weather.notice.fetched carries a format verb (%s = place).
var translations = map[string]Text{

	// page
	"page.title": {
		en: "किसानमित्र - KisanMitra",
	},
	"page.tagline": {
		en: "Smart Farming Assistant | स्मार्ट कृषि सहायक | స్మార్ట్ వ్యవసాయ సహాయకుడు",
	},
	"page.language_label": {
		en: "Language / भाषा / భాష",
	},
	"page.footer": {
		en: "KisanMitra © 2024 | Empowering Farmers with AI Technology | कृषि में AI की शक्ति | వ్యవసాయంలో AI శక్తి",
	},

	// shared
	"common.notice.pending.title": {
		en: "Please wait",
		hi: "कृपया प्रतीक्षा करें",
		te: "దయచేసి వేచి ఉండండి",
	},
	"common.notice.pending.description": {
		en: "A request is already in progress",
		hi: "एक अनुरोध पहले से प्रगति में है",
		te: "ఒక అభ్యర్థన ఇప్పటికే ప్రోగ్రెస్‌లో ఉంది",
	},

	// weather panel
	"weather.title": {
		en: "Weather Forecast",
		hi: "मौसम पूर्वानुमान",
		te: "వాతావరణ అంచనా",
	},
	"weather.city_label": {
		en: "Enter City Name",
		hi: "शहर का नाम दर्ज करें",
		te: "నగర పేరు నమోదు చేయండి",
	},
	"weather.submit": {
		en: "Get Weather",
		hi: "मौसम प्राप्त करें",
		te: "వాతావరణం పొందండి",
	},
	"weather.loading": {
		en: "Loading...",
		hi: "लोड हो रहा है...",
		te: "లోడ్ అవుతోంది...",
	},
	"weather.temperature": {
		en: "Temperature",
		hi: "तापमान",
		te: "ఉష్ణోగ్రత",
	},
	"weather.status": {
		en: "Weather Status",
		hi: "मौसम की स्थिति",
		te: "వాతావరణ స్థితి",
	},
	"weather.humidity": {
		en: "Humidity",
		hi: "आर्द्रता",
		te: "తేమ",
	},
	"weather.wind_speed": {
		en: "Wind Speed",
		hi: "हवा की गति",
		te: "గాలి వేగం",
	},
	"weather.placeholder": {
		en: "e.g., New Delhi, Mumbai, Hyderabad",
		hi: "जैसे नई दिल्ली, मुंबई, हैदराबाद",
		te: "ఉదా., న్యూ ఢిల్లీ, ముంబై, హైదరాబాద్",
	},
	"weather.condition.sunny": {
		en: "Sunny",
		hi: "धूप",
		te: "ఎండ",
	},
	"weather.condition.partly_cloudy": {
		en: "Partly Cloudy",
		hi: "आंशिक रूप से बादल",
		te: "పాక్షికంగా మేఘావృతం",
	},
	"weather.condition.cloudy": {
		en: "Cloudy",
		hi: "बादल",
		te: "మేఘావృతం",
	},
	"weather.condition.light_rain": {
		en: "Light Rain",
		hi: "हल्की बारिश",
		te: "తేలికపాటి వర్షం",
	},
	"weather.notice.empty_city": {
		en: "Please enter a city name",
		hi: "कृपया शहर का नाम दर्ज करें",
		te: "దయచేసి నగర పేరు నమోదు చేయండి",
	},
	// %s = place
	"weather.notice.fetched": {
		en: "Weather data fetched for %s",
		hi: "%s के लिए मौसम डेटा प्राप्त हुआ",
		te: "%s కోసం వాతావరణ సమాచారం పొందబడింది",
	},
	"weather.notice.failed": {
		en: "Failed to fetch weather data",
		hi: "मौसम डेटा प्राप्त करने में विफल",
		te: "వాతావరణ సమాచారం పొందడంలో విఫలమైంది",
	},

	// assistant panel
	"assistant.title": {
		en: "AI Farming Assistant",
		hi: "AI कृषि सहायक",
		te: "AI వ్యవసాయ సహాయకుడు",
	},
	"assistant.question_label": {
		en: "Ask your farming question",
		hi: "अपना कृषि प्रश्न पूछें",
		te: "మీ వ్యవసాయ ప్రశ్న అడగండి",
	},
	"assistant.submit": {
		en: "Ask Assistant",
		hi: "सहायक से पूछें",
		te: "సహాయకుడిని అడగండి",
	},
	"assistant.placeholder": {
		en: "e.g., What's the best time to plant tomatoes? How to prevent crop diseases?",
		hi: "जैसे टमाटर लगाने का सबसे अच्छा समय क्या है? फसल रोगों को कैसे रोकें?",
		te: "ఉదా., టమాటోలు నాటడానికి ఉత్తమ సమయం ఎప్పుడు? పంట వ్యాధులను ఎలా నివారించాలి?",
	},
	"assistant.voice_start": {
		en: "Start Voice Input",
		hi: "वॉयस इनपुट शुरू करें",
		te: "వాయిస్ ఇన్‌పుట్ ప్రారంభించండి",
	},
	"assistant.voice_stop": {
		en: "Stop Voice Input",
		hi: "वॉयस इनपुट बंद करें",
		te: "వాయిస్ ఇన్‌పుట్ ఆపండి",
	},
	"assistant.listening": {
		en: "Listening...",
		hi: "सुन रहा है...",
		te: "వింటున్నాను...",
	},
	"assistant.speaking": {
		en: "Speaking...",
		hi: "बोल रहा है...",
		te: "మాట్లాడుతున్నాను...",
	},
	"assistant.thinking": {
		en: "Thinking...",
		hi: "सोच रहा है...",
		te: "ఆలోచిస్తున్నాను...",
	},
	"assistant.greeting": {
		en: "Hello! I'm your KisanMitra AI assistant. I can help you with farming advice, crop management, weather insights, and agricultural best practices. How can I assist you today?",
		hi: "नमस्ते! मैं आपका किसानमित्र AI सहायक हूं। मैं कृषि सलाह, फसल प्रबंधन, मौसम जानकारी और कृषि सर्वोत्तम प्रथाओं में आपकी सहायता कर सकता हूं। आज मैं आपकी कैसे सहायता कर सकता हूं?",
		te: "నమస్కారం! నేను మీ కిసాన్‌మిత్ర AI సహాయకుడిని. వ్యవసాయ సలహాలు, పంట నిర్వహణ, వాతావరణ అంతర్దృష్టులు మరియు వ్యవసాయ ఉత్తమ పద్ధతులలో నేను మీకు సహాయం చేయగలను. ఈరోజు నేను మీకు ఎలా సహాయం చేయగలను?",
	},
	"assistant.notice.empty_question": {
		en: "Please enter a question",
		hi: "कृपया एक प्रश्न दर्ज करें",
		te: "దయచేసి ఒక ప్రశ్న నమోదు చేయండి",
	},
	"assistant.notice.answered": {
		en: "Response generated successfully",
		hi: "उत्तर सफलतापूर्वक तैयार किया गया",
		te: "సమాధానం విజయవంతంగా రూపొందించబడింది",
	},
	"assistant.notice.failed": {
		en: "Failed to get AI response",
		hi: "AI उत्तर प्राप्त करने में विफल",
		te: "AI సమాధానం పొందడంలో విఫలమైంది",
	},
	"assistant.notice.voice_failed": {
		en: "Voice recognition failed",
		hi: "आवाज़ पहचान विफल रही",
		te: "వాయిస్ గుర్తింపు విఫలమైంది",
	},
	"assistant.notice.voice_unsupported": {
		en: "Voice recognition not supported",
		hi: "आवाज़ पहचान समर्थित नहीं है",
		te: "వాయిస్ గుర్తింపుకు మద్దతు లేదు",
	},
	"assistant.notice.voice_busy": {
		en: "Voice input is already active",
		hi: "वॉयस इनपुट पहले से सक्रिय है",
		te: "వాయిస్ ఇన్‌పుట్ ఇప్పటికే సక్రియంగా ఉంది",
	},

	// services panel
	"services.title": {
		en: "AI Agricultural Services",
		hi: "AI कृषि सेवाएं",
		te: "AI వ్యవసాయ సేవలు",
	},
	"services.subtitle": {
		en: "Get expert recommendations using AI technology",
		hi: "AI तकनीक का उपयोग करके विशेषज्ञ सुझाव प्राप्त करें",
		te: "AI సాంకేతికతతో నిపుణుల సిఫార్సులు పొందండి",
	},
	"services.upload": {
		en: "Upload Image",
		hi: "छवि अपलोड करें",
		te: "చిత్రం అప్‌లోడ్ చేయండి",
	},
	"services.selected": {
		en: "Selected:",
		hi: "चयनित:",
		te: "ఎంచుకున్నది:",
	},
	"services.describe": {
		en: "Or Describe Your Query",
		hi: "या अपनी क्वेरी का वर्णन करें",
		te: "లేదా మీ ప్రశ్న వివరించండి",
	},
	"services.placeholder": {
		en: "Describe your farming situation, soil conditions, or plant issues...",
		hi: "अपनी खेती की स्थिति, मिट्टी की स्थिति, या पौधों की समस्याओं का वर्णन करें...",
		te: "మీ వ్యవసాయ పరిస్థితి, నేల పరిస్థితులు లేదా మొక్కల సమస్యలను వివరించండి...",
	},
	"services.analyzing": {
		en: "Analyzing...",
		hi: "विश्लेषण कर रहे हैं...",
		te: "విశ్లేషిస్తున్నది...",
	},
	"services.submit": {
		en: "Get Recommendation",
		hi: "सुझाव प्राप्त करें",
		te: "సిఫార్సు పొందండి",
	},
	"services.back": {
		en: "Back",
		hi: "वापस",
		te: "వెనుకకు",
	},
	"services.result": {
		en: "AI Recommendation",
		hi: "AI सुझाव",
		te: "AI సిఫార్సు",
	},
	"services.notice.image_uploaded": {
		en: "Image uploaded successfully",
		hi: "छवि सफलतापूर्वक अपलोड की गई",
		te: "చిత్రం విజయవంతంగా అప్‌లోడ్ చేయబడింది",
	},
	"services.notice.empty_input.title": {
		en: "Please provide input",
		hi: "कृपया इनपुट प्रदान करें",
		te: "దయచేసి ఇన్‌పుట్ అందించండి",
	},
	"services.notice.empty_input.description": {
		en: "Either upload an image or provide text description",
		hi: "या तो एक छवि अपलोड करें या पाठ विवरण प्रदान करें",
		te: "చిత్రాన్ని అప్‌లోడ్ చేయండి లేదా టెక్స్ట్ వర్ణన అందించండి",
	},
	"services.notice.failed": {
		en: "Failed to analyze input",
		hi: "इनपुट का विश्लेषण करने में विफल",
		te: "ఇన్‌పుట్‌ను విశ్లేషించడంలో విఫలమైంది",
	},
}
