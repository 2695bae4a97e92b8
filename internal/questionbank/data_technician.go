package questionbank

import "evhire_backend/internal/models"

func technicianQuestions() []Entry {
	return []Entry{
		// Step 1 - EV fundamentals
		{
			Role: models.UserRoleTechnician, Step: 1, Difficulty: 1, Points: 1,
			Text: map[string]string{
				"en": "What does BMS stand for in an electric vehicle?",
				"hi": "इलेक्ट्रिक वाहन में BMS का पूरा नाम क्या है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Battery Management System", "hi": "बैटरी मैनेजमेंट सिस्टम"}, Correct: true},
				{Text: map[string]string{"en": "Brake Monitoring System", "hi": "ब्रेक मॉनिटरिंग सिस्टम"}},
				{Text: map[string]string{"en": "Basic Motor Service", "hi": "बेसिक मोटर सर्विस"}},
				{Text: map[string]string{"en": "Battery Motor Switch", "hi": "बैटरी मोटर स्विच"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 1, Difficulty: 1, Points: 1,
			Text: map[string]string{
				"en": "Which battery chemistry is most common in modern electric two-wheelers?",
				"hi": "आधुनिक इलेक्ट्रिक दोपहिया वाहनों में कौन सी बैटरी केमिस्ट्री सबसे आम है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Lead-acid", "hi": "लेड-एसिड"}},
				{Text: map[string]string{"en": "Lithium-ion", "hi": "लिथियम-आयन"}, Correct: true},
				{Text: map[string]string{"en": "Nickel-cadmium", "hi": "निकल-कैडमियम"}},
				{Text: map[string]string{"en": "Alkaline", "hi": "अल्कलाइन"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "What is the function of a motor controller in an EV?",
				"hi": "EV में मोटर कंट्रोलर का क्या काम है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "It charges the battery", "hi": "यह बैटरी चार्ज करता है"}},
				{Text: map[string]string{"en": "It regulates power delivered to the motor", "hi": "यह मोटर को दी जाने वाली पावर को नियंत्रित करता है"}, Correct: true},
				{Text: map[string]string{"en": "It cools the cabin", "hi": "यह केबिन को ठंडा करता है"}},
				{Text: map[string]string{"en": "It inflates the tyres", "hi": "यह टायरों में हवा भरता है"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "Before servicing a high-voltage battery pack, the first safety step is to:",
				"hi": "हाई-वोल्टेज बैटरी पैक की सर्विस से पहले पहला सुरक्षा कदम क्या है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Disconnect the service plug and verify zero voltage", "hi": "सर्विस प्लग निकालें और ज़ीरो वोल्टेज की पुष्टि करें"}, Correct: true},
				{Text: map[string]string{"en": "Remove the wheels", "hi": "पहिए निकालें"}},
				{Text: map[string]string{"en": "Drain the coolant", "hi": "कूलेंट निकालें"}},
				{Text: map[string]string{"en": "Start the motor", "hi": "मोटर चालू करें"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "Regenerative braking converts kinetic energy into:",
				"hi": "रीजनरेटिव ब्रेकिंग गतिज ऊर्जा को किसमें बदलती है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Heat only", "hi": "केवल गर्मी"}},
				{Text: map[string]string{"en": "Electrical energy stored in the battery", "hi": "बैटरी में संग्रहित विद्युत ऊर्जा"}, Correct: true},
				{Text: map[string]string{"en": "Sound energy", "hi": "ध्वनि ऊर्जा"}},
				{Text: map[string]string{"en": "Hydraulic pressure", "hi": "हाइड्रोलिक दबाव"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 1, Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "A multimeter across a healthy 48V lithium pack at rest should read approximately:",
				"hi": "आराम की स्थिति में स्वस्थ 48V लिथियम पैक पर मल्टीमीटर लगभग कितना दिखाएगा?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "12V", "hi": "12V"}},
				{Text: map[string]string{"en": "48-54V", "hi": "48-54V"}, Correct: true},
				{Text: map[string]string{"en": "230V", "hi": "230V"}},
				{Text: map[string]string{"en": "0V", "hi": "0V"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 1, Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "Which tool is mandatory when working on live high-voltage EV circuits?",
				"hi": "लाइव हाई-वोल्टेज EV सर्किट पर काम करते समय कौन सा उपकरण अनिवार्य है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Insulated gloves rated for the voltage class", "hi": "वोल्टेज क्लास के अनुसार रेटेड इंसुलेटेड दस्ताने"}, Correct: true},
				{Text: map[string]string{"en": "Ordinary rubber slippers", "hi": "साधारण रबर की चप्पलें"}},
				{Text: map[string]string{"en": "Cotton gloves", "hi": "सूती दस्ताने"}},
				{Text: map[string]string{"en": "No protection is needed below 100V", "hi": "100V से नीचे किसी सुरक्षा की आवश्यकता नहीं"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "What does SOC indicate on an EV dashboard?",
				"hi": "EV डैशबोर्ड पर SOC क्या दर्शाता है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "State of Charge", "hi": "स्टेट ऑफ चार्ज"}, Correct: true},
				{Text: map[string]string{"en": "Speed of Car", "hi": "स्पीड ऑफ कार"}},
				{Text: map[string]string{"en": "Service on Call", "hi": "सर्विस ऑन कॉल"}},
				{Text: map[string]string{"en": "System Overload Check", "hi": "सिस्टम ओवरलोड चेक"}},
			},
		},

		// Step 2 - diagnostics, scoped by domain/category
		{
			Role: models.UserRoleTechnician, Step: 2, Domain: "battery", Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "Cell balancing in a lithium pack is required to:",
				"hi": "लिथियम पैक में सेल बैलेंसिंग किसलिए आवश्यक है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Equalize the state of charge across cells", "hi": "सभी सेलों में चार्ज की स्थिति समान करने के लिए"}, Correct: true},
				{Text: map[string]string{"en": "Increase the pack weight", "hi": "पैक का वज़न बढ़ाने के लिए"}},
				{Text: map[string]string{"en": "Reduce the terminal voltage", "hi": "टर्मिनल वोल्टेज घटाने के लिए"}},
				{Text: map[string]string{"en": "Heat the pack faster", "hi": "पैक को तेज़ी से गर्म करने के लिए"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 2, Domain: "motor", Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "A BLDC hub motor that stutters at low speed most commonly has a faulty:",
				"hi": "कम गति पर अटकने वाली BLDC हब मोटर में सबसे आम खराबी किसकी होती है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Hall sensor", "hi": "हॉल सेंसर"}, Correct: true},
				{Text: map[string]string{"en": "Headlight relay", "hi": "हेडलाइट रिले"}},
				{Text: map[string]string{"en": "Horn switch", "hi": "हॉर्न स्विच"}},
				{Text: map[string]string{"en": "Seat lock", "hi": "सीट लॉक"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 2, VehicleCategory: "2W", Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "On an electric two-wheeler, throttle input is typically read by:",
				"hi": "इलेक्ट्रिक दोपहिया में थ्रॉटल इनपुट आमतौर पर किससे पढ़ा जाता है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "A hall-effect twist sensor", "hi": "हॉल-इफेक्ट ट्विस्ट सेंसर"}, Correct: true},
				{Text: map[string]string{"en": "A carburetor cable", "hi": "कार्बोरेटर केबल"}},
				{Text: map[string]string{"en": "A fuel injector", "hi": "फ्यूल इंजेक्टर"}},
				{Text: map[string]string{"en": "A spark plug", "hi": "स्पार्क प्लग"}},
			},
		},
		{
			Role: models.UserRoleTechnician, Step: 2, Difficulty: 4, Points: 2,
			Text: map[string]string{
				"en": "An insulation resistance test between HV+ and chassis should show:",
				"hi": "HV+ और चेसिस के बीच इंसुलेशन रेज़िस्टेंस टेस्ट में क्या दिखना चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Very high resistance (megaohm range)", "hi": "बहुत अधिक रेज़िस्टेंस (मेगाओम रेंज)"}, Correct: true},
				{Text: map[string]string{"en": "Zero resistance", "hi": "शून्य रेज़िस्टेंस"}},
				{Text: map[string]string{"en": "Exactly 12 ohms", "hi": "ठीक 12 ओम"}},
				{Text: map[string]string{"en": "Negative resistance", "hi": "ऋणात्मक रेज़िस्टेंस"}},
			},
		},
	}
}
