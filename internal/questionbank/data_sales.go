package questionbank

import "evhire_backend/internal/models"

func salesQuestions() []Entry {
	return []Entry{
		// Step 1 - EV product and customer basics
		{
			Role: models.UserRoleSales, Step: 1, Difficulty: 1, Points: 1,
			Text: map[string]string{
				"en": "What is the main running-cost advantage of an EV over a petrol vehicle?",
				"hi": "पेट्रोल वाहन की तुलना में EV का मुख्य रनिंग-कॉस्ट लाभ क्या है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Electricity per km costs far less than petrol", "hi": "प्रति किमी बिजली की लागत पेट्रोल से बहुत कम है"}, Correct: true},
				{Text: map[string]string{"en": "EVs never need servicing", "hi": "EV को कभी सर्विस की ज़रूरत नहीं होती"}},
				{Text: map[string]string{"en": "EV insurance is free", "hi": "EV का बीमा मुफ़्त होता है"}},
				{Text: map[string]string{"en": "EVs have no tyres to replace", "hi": "EV में बदलने के लिए टायर नहीं होते"}},
			},
		},
		{
			Role: models.UserRoleSales, Step: 1, Difficulty: 1, Points: 1,
			Text: map[string]string{
				"en": "\"Range\" of an electric vehicle refers to:",
				"hi": "इलेक्ट्रिक वाहन की \"रेंज\" का मतलब है:",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Distance it can travel on a full charge", "hi": "पूरी चार्जिंग पर तय की जा सकने वाली दूरी"}, Correct: true},
				{Text: map[string]string{"en": "Its top speed", "hi": "इसकी अधिकतम गति"}},
				{Text: map[string]string{"en": "The warranty period", "hi": "वारंटी अवधि"}},
				{Text: map[string]string{"en": "The number of seats", "hi": "सीटों की संख्या"}},
			},
		},
		{
			Role: models.UserRoleSales, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "A customer worried about charging at home should first be asked about:",
				"hi": "घर पर चार्जिंग को लेकर चिंतित ग्राहक से सबसे पहले क्या पूछना चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Availability of a dedicated power socket near parking", "hi": "पार्किंग के पास समर्पित पावर सॉकेट की उपलब्धता"}, Correct: true},
				{Text: map[string]string{"en": "Their favourite colour", "hi": "उनका पसंदीदा रंग"}},
				{Text: map[string]string{"en": "Their blood group", "hi": "उनका ब्लड ग्रुप"}},
				{Text: map[string]string{"en": "The size of their TV", "hi": "उनके टीवी का आकार"}},
			},
		},
		{
			Role: models.UserRoleSales, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "FAME-II is:",
				"hi": "FAME-II क्या है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "A government incentive scheme for EV adoption", "hi": "EV अपनाने के लिए सरकारी प्रोत्साहन योजना"}, Correct: true},
				{Text: map[string]string{"en": "A battery brand", "hi": "एक बैटरी ब्रांड"}},
				{Text: map[string]string{"en": "A charging connector type", "hi": "एक चार्जिंग कनेक्टर प्रकार"}},
				{Text: map[string]string{"en": "An insurance policy", "hi": "एक बीमा पॉलिसी"}},
			},
		},
		{
			Role: models.UserRoleSales, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "Which figure best helps compare total cost of ownership for an EV?",
				"hi": "EV की कुल स्वामित्व लागत की तुलना के लिए कौन सा आँकड़ा सबसे उपयोगी है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Cost per kilometre including charging and maintenance", "hi": "चार्जिंग और रखरखाव सहित प्रति किलोमीटर लागत"}, Correct: true},
				{Text: map[string]string{"en": "Showroom paint options", "hi": "शोरूम पेंट विकल्प"}},
				{Text: map[string]string{"en": "Dealer's monthly target", "hi": "डीलर का मासिक लक्ष्य"}},
				{Text: map[string]string{"en": "Number of dealerships in the city", "hi": "शहर में डीलरशिप की संख्या"}},
			},
		},
		{
			Role: models.UserRoleSales, Step: 1, Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "A customer asks about battery life. The honest answer is that lithium packs typically:",
				"hi": "ग्राहक बैटरी लाइफ के बारे में पूछता है। ईमानदार जवाब यह है कि लिथियम पैक आमतौर पर:",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Degrade gradually and carry a multi-year warranty", "hi": "धीरे-धीरे क्षीण होते हैं और कई वर्षों की वारंटी के साथ आते हैं"}, Correct: true},
				{Text: map[string]string{"en": "Last forever", "hi": "हमेशा चलते हैं"}},
				{Text: map[string]string{"en": "Must be replaced every month", "hi": "हर महीने बदलने पड़ते हैं"}},
				{Text: map[string]string{"en": "Cannot be warrantied", "hi": "इन पर वारंटी नहीं मिल सकती"}},
			},
		},

		// Step 2 - sales process, scoped by training role
		{
			Role: models.UserRoleSales, Step: 2, Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "During a test ride the best moment to discuss financing options is:",
				"hi": "टेस्ट राइड के दौरान फाइनेंसिंग विकल्पों पर चर्चा का सबसे अच्छा समय कौन सा है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "After the customer has experienced the vehicle", "hi": "जब ग्राहक वाहन का अनुभव कर चुका हो"}, Correct: true},
				{Text: map[string]string{"en": "Before greeting the customer", "hi": "ग्राहक का अभिवादन करने से पहले"}},
				{Text: map[string]string{"en": "Never", "hi": "कभी नहीं"}},
				{Text: map[string]string{"en": "Only by SMS", "hi": "केवल SMS से"}},
			},
		},
		{
			Role: models.UserRoleSales, Step: 2, TrainingRole: "showroom", Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "When a customer objects that EVs are costly, the right response is to:",
				"hi": "जब ग्राहक कहे कि EV महँगे हैं, तो सही प्रतिक्रिया क्या है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Walk them through savings over the ownership period", "hi": "स्वामित्व अवधि में होने वाली बचत समझाएँ"}, Correct: true},
				{Text: map[string]string{"en": "Agree and end the conversation", "hi": "सहमत होकर बातचीत समाप्त करें"}},
				{Text: map[string]string{"en": "Criticize their current vehicle", "hi": "उनके मौजूदा वाहन की आलोचना करें"}},
				{Text: map[string]string{"en": "Offer an unauthorized discount", "hi": "अनधिकृत छूट की पेशकश करें"}},
			},
		},
		{
			Role: models.UserRoleSales, Step: 2, Difficulty: 4, Points: 2,
			Text: map[string]string{
				"en": "A charger rated 3.3 kW refilling a 3 kWh scooter battery from empty takes roughly:",
				"hi": "3.3 kW का चार्जर 3 kWh की स्कूटर बैटरी को खाली से भरने में लगभग कितना समय लेगा?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "About one hour", "hi": "लगभग एक घंटा"}, Correct: true},
				{Text: map[string]string{"en": "About ten hours", "hi": "लगभग दस घंटे"}},
				{Text: map[string]string{"en": "Five minutes", "hi": "पाँच मिनट"}},
				{Text: map[string]string{"en": "Two days", "hi": "दो दिन"}},
			},
		},
	}
}
