package i18n

import (
	"fmt"

	"kisanmitra/internal/domain"
)

// chatResponses are the canned assistant answers, five per language.
var chatResponses = map[domain.Language][]string{
	en: {
		"Based on your location and current weather conditions, I recommend planting tomatoes in early spring when soil temperature reaches 60°F (15°C). Ensure proper spacing and use disease-resistant varieties.",
		"To prevent crop diseases, implement crop rotation, ensure proper drainage, use resistant varieties, and apply organic fungicides when necessary. Regular monitoring is key.",
		"For optimal soil health, test pH levels regularly, add organic compost, practice cover cropping, and maintain proper moisture levels. Healthy soil leads to better yields.",
		"Consider using drip irrigation to conserve water and reduce disease risk. Water early morning to minimize evaporation and fungal growth.",
		"Integrated Pest Management (IPM) combines biological, cultural, and chemical controls. Start with natural predators and organic methods before considering pesticides.",
	},
	hi: {
		"आपके स्थान और वर्तमान मौसम की स्थिति के आधार पर, मैं सुझाता हूं कि टमाटर बसंत ऋतु में लगाएं जब मिट्टी का तापमान 15°C तक पहुंच जाए। उचित दूरी और रोग प्रतिरोधी किस्मों का उपयोग करें।",
		"फसल रोगों को रोकने के लिए फसल चक्र अपनाएं, उचित जल निकासी सुनिश्चित करें, प्रतिरोधी किस्मों का उपयोग करें और आवश्यक होने पर जैविक कवकनाशी का प्रयोग करें।",
		"मिट्टी के स्वास्थ्य के लिए नियमित रूप से pH स्तर की जांच करें, जैविक खाद डालें, कवर क्रॉपिंग करें और उचित नमी बनाए रखें।",
		"पानी बचाने और रोग के जोखिम को कम करने के लिए ड्रिप सिंचाई का उपयोग करें। सुबह जल्दी पानी दें।",
		"एकीकृत कीट प्रबंधन जैविक, सांस्कृतिक और रासायनिक नियंत्रणों को जोड़ता है। कीटनाशकों से पहले प्राकृतिक शिकारियों का उपयोग करें।",
	},
	te: {
		"మీ స్థానం మరియు ప్రస్తుత వాతావరణ పరిస్థితుల ఆధారంగా, మట్టి ఉష్ణోగ్రత 15°C చేరుకున్నప్పుడు వసంత కాలంలో టమాటోలు నాటాలని సిఫార్సు చేస్తున్నాను।",
		"పంట వ్యాధులను నివారించడానికి, పంట మార్పిడిని అమలు చేయండి, సరైన డ్రైనేజీని నిర్ధారించండి, నిరోధక రకాలను ఉపయోగించండి మరియు అవసరమైనప్పుడు సేంద్రీయ శిలీంద్రనాశనులను వర్తించండి।",
		"మట్టి ఆరోగ్యం కోసం నియమితంగా pH స్థాయిలను పరీక్షించండి, సేంద్రీయ కంపోస్ట్ జోడించండి, కవర్ క్రాపింగ్ ప్రాక్టీస్ చేయండి మరియు సరైన తేమ స్థాయిలను నిర్వహించండి।",
		"నీటిని ఆదా చేయడానికి మరియు వ్యాధి ప్రమాదాన్ని తగ్గించడానికి డ్రిప్ ఇర్రిగేషన్ ఉపయోగించండి। ఉదయాన్నే నీరు పోయండి।",
		"ఇంటిగ్రేటెడ్ పెస్ట్ మేనేజ్‌మెంట్ జీవ, సాంస్కృతిక మరియు రసాయన నియంత్రణలను మిళితం చేస్తుంది। కీటనాశకాలను పరిగణించే ముందు సహజ మాంసాహారులు మరియు సేంద్రీయ పద్ధతులతో ప్రారంభించండి।",
	},
}

// Card is the localized title and description of one agricultural service.
type Card struct {
	Title       Text
	Description Text
}

var serviceCards = map[domain.ServiceKind]Card{
	domain.Crop: {
		Title: Text{
			en: "Crop Recommendation",
			hi: "फसल सुझाव",
			te: "పంట సిఫార్సు",
		},
		Description: Text{
			en: "Get personalized crop recommendations based on soil conditions, weather, and location",
			hi: "मिट्टी की स्थिति, मौसम और स्थान के आधार पर व्यक्तिगत फसल सुझाव प्राप्त करें",
			te: "నేల పరిస్థితులు, వాతావరణం మరియు ప్రాంతం ఆధారంగా వ్యక్తిగత పంట సిఫార్సులు పొందండి",
		},
	},
	domain.Fertilizer: {
		Title: Text{
			en: "Fertilizer Recommendation",
			hi: "उर्वरक सुझाव",
			te: "ఎరువుల సిఫార్సు",
		},
		Description: Text{
			en: "Get optimal fertilizer recommendations for better crop yield",
			hi: "बेहतर फसल उत्पादन के लिए इष्टतम उर्वरक सुझाव प्राप्त करें",
			te: "మెరుగైన పంట దిగుబడి కోసం సరైన ఎరువుల సిఫార్సులు పొందండి",
		},
	},
	domain.Disease: {
		Title: Text{
			en: "Disease Prediction",
			hi: "रोग पूर्वानुमान",
			te: "వ్యాధి అంచనా",
		},
		Description: Text{
			en: "Identify plant diseases and get treatment recommendations",
			hi: "पौधों की बीमारियों की पहचान करें और उपचार सुझाव प्राप्त करें",
			te: "మొక్కల వ్యాధులను గుర్తించి చికిత్స సిఫార్సులు పొందండి",
		},
	},
}

// serviceResults holds exactly one canned analysis per kind and language.
var serviceResults = map[domain.ServiceKind]Text{
	domain.Crop: {
		en: "Based on your input, we recommend growing wheat and corn. The soil conditions appear suitable for cereal crops with proper irrigation.",
		hi: "आपके इनपुट के आधार पर, हम गेहूं और मक्का उगाने की सलाह देते हैं। उचित सिंचाई के साथ मिट्टी की स्थिति अनाज की फसलों के लिए उपयुक्त दिखती है।",
		te: "మీ ఇన్‌పుట్ ఆధారంగా, మేము గోధుమలు మరియు మొక్కజొన్న పండించాలని సిఫార్సు చేస్తున్నాము. సరైన నీటిపారుదలతో నేల పరిస్థితులు ధాన్య పంటలకు అనుకూలంగా కనిపిస్తున్నాయి.",
	},
	domain.Fertilizer: {
		en: "NPK fertilizer ratio 10-26-26 is recommended. Apply 150kg per hectare during planting season. Also consider organic compost for better soil health.",
		hi: "NPK उर्वरक अनुपात 10-26-26 की सिफारिश की जाती है। रोपण के मौसम में प्रति हेक्टेयर 150 किलो लागू करें। मिट्टी के बेहतर स्वास्थ्य के लिए जैविक खाद भी पर विचार करें।",
		te: "NPK ఎరువుల నిష్పత్తి 10-26-26 సిఫార్సు చేయబడింది. నాటు కాలంలో హెక్టారుకు 150 కిలోలు వేయండి. మెరుగైన నేల ఆరోగ్యం కోసం సేంద్రీయ కంపోస్ట్ కూడా పరిగణించండి.",
	},
	domain.Disease: {
		en: "Possible leaf blight detected. Recommend copper-based fungicide spray every 7-10 days. Remove affected leaves and ensure proper air circulation.",
		hi: "संभावित पत्ती झुलसा रोग का पता चला है। हर 7-10 दिनों में तांबा आधारित फंगीसाइड स्प्रे की सिफारिश की जाती है। प्रभावित पत्तियों को हटाएं और उचित हवा के प्रवाह को सुनिश्चित करें।",
		te: "సాధ్యమైన ఆకుల దహనం గుర్తించబడింది. ప్రతి 7-10 రోజులకు రాగి ఆధారిత ఫంగిసైడ్ స్ప్రే సిఫార్సు చేయబడింది. ప్రభావిత ఆకులను తొలగించి సరైన గాలి ప్రసరణను నిర్ధారించండి.",
	},
}

// ChatResponses returns a copy of the candidate answers for lang,
// falling back to the English list.
func ChatResponses(lang domain.Language) []string {
	list, ok := chatResponses[lang]
	if !ok {
		list = chatResponses[DefaultLanguage]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// ServiceResult is the canned analysis for kind in lang.
func ServiceResult(kind domain.ServiceKind, lang domain.Language) (string, error) {
	t, ok := serviceResults[kind]
	if !ok {
		return "", fmt.Errorf("i18n: unknown service kind %q", kind)
	}
	return Resolve(t, lang)
}

// ServiceCard returns the card for kind and whether it exists.
func ServiceCard(kind domain.ServiceKind) (Card, bool) {
	c, ok := serviceCards[kind]
	return c, ok
}

// Option is one entry of the language selector.
type Option struct {
	ID     domain.Language `json:"id"`
	Label  string          `json:"label"`
	Native string          `json:"native"`
}

// Languages returns the selector options in display order.
func Languages() []Option {
	return []Option{
		{ID: en, Label: "English", Native: "English"},
		{ID: hi, Label: "Hindi", Native: "हिंदी"},
		{ID: te, Label: "Telugu", Native: "తెలుగు"},
	}
}
