package questionbank

import "evhire_backend/internal/models"

func workshopQuestions() []Entry {
	return []Entry{
		// Step 1 - workshop operations basics
		{
			Role: models.UserRoleWorkshop, Step: 1, Difficulty: 1, Points: 1,
			Text: map[string]string{
				"en": "Lithium battery packs awaiting repair should be stored:",
				"hi": "मरम्मत की प्रतीक्षा में लिथियम बैटरी पैक कैसे रखने चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "In a ventilated area away from flammable material", "hi": "हवादार जगह पर, ज्वलनशील सामग्री से दूर"}, Correct: true},
				{Text: map[string]string{"en": "Stacked next to the paint booth", "hi": "पेंट बूथ के पास एक के ऊपर एक"}},
				{Text: map[string]string{"en": "Under direct sunlight", "hi": "सीधी धूप में"}},
				{Text: map[string]string{"en": "Submerged in water", "hi": "पानी में डुबोकर"}},
			},
		},
		{
			Role: models.UserRoleWorkshop, Step: 1, Difficulty: 1, Points: 1,
			Text: map[string]string{
				"en": "Which fire extinguisher class is appropriate for a lithium battery fire?",
				"hi": "लिथियम बैटरी की आग के लिए कौन सी श्रेणी का अग्निशामक उपयुक्त है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Class D or specialized lithium agent", "hi": "क्लास D या विशेष लिथियम एजेंट"}, Correct: true},
				{Text: map[string]string{"en": "A bucket of petrol", "hi": "पेट्रोल की बाल्टी"}},
				{Text: map[string]string{"en": "A dry cloth", "hi": "सूखा कपड़ा"}},
				{Text: map[string]string{"en": "Ordinary water spray only", "hi": "केवल साधारण पानी का छिड़काव"}},
			},
		},
		{
			Role: models.UserRoleWorkshop, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "A job card for an EV service visit should always record:",
				"hi": "EV सर्विस विज़िट के जॉब कार्ड में हमेशा क्या दर्ज होना चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Reported fault, odometer reading and battery state", "hi": "बताई गई खराबी, ओडोमीटर रीडिंग और बैटरी की स्थिति"}, Correct: true},
				{Text: map[string]string{"en": "Only the customer's name", "hi": "केवल ग्राहक का नाम"}},
				{Text: map[string]string{"en": "The mechanic's lunch order", "hi": "मैकेनिक का लंच ऑर्डर"}},
				{Text: map[string]string{"en": "Nothing, it is optional", "hi": "कुछ नहीं, यह वैकल्पिक है"}},
			},
		},
		{
			Role: models.UserRoleWorkshop, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "Work on high-voltage systems in the workshop must be done by:",
				"hi": "वर्कशॉप में हाई-वोल्टेज सिस्टम पर काम किसे करना चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Technicians trained and certified for HV work", "hi": "HV कार्य के लिए प्रशिक्षित और प्रमाणित तकनीशियन"}, Correct: true},
				{Text: map[string]string{"en": "Any walk-in helper", "hi": "कोई भी सहायक"}},
				{Text: map[string]string{"en": "The customer", "hi": "ग्राहक"}},
				{Text: map[string]string{"en": "The security guard", "hi": "सुरक्षा गार्ड"}},
			},
		},
		{
			Role: models.UserRoleWorkshop, Step: 1, Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "Spare battery packs in stock should be kept at a state of charge around:",
				"hi": "स्टॉक में रखे अतिरिक्त बैटरी पैक कितने चार्ज स्तर पर रखने चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "40-60%", "hi": "40-60%"}, Correct: true},
				{Text: map[string]string{"en": "Always 100%", "hi": "हमेशा 100%"}},
				{Text: map[string]string{"en": "Always 0%", "hi": "हमेशा 0%"}},
				{Text: map[string]string{"en": "Charge level does not matter", "hi": "चार्ज स्तर मायने नहीं रखता"}},
			},
		},
		{
			Role: models.UserRoleWorkshop, Step: 1, Difficulty: 2, Points: 1,
			Text: map[string]string{
				"en": "Before returning a serviced EV to the customer, the workshop must:",
				"hi": "सर्विस किए गए EV को ग्राहक को लौटाने से पहले वर्कशॉप को क्या करना चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Road-test and verify the reported fault is resolved", "hi": "रोड-टेस्ट करके पुष्टि करें कि बताई गई खराबी ठीक हो गई है"}, Correct: true},
				{Text: map[string]string{"en": "Repaint the vehicle", "hi": "वाहन को दोबारा पेंट करें"}},
				{Text: map[string]string{"en": "Drain the battery fully", "hi": "बैटरी पूरी तरह खाली करें"}},
				{Text: map[string]string{"en": "Remove the registration plate", "hi": "रजिस्ट्रेशन प्लेट हटा दें"}},
			},
		},

		// Step 2 - workshop management
		{
			Role: models.UserRoleWorkshop, Step: 2, Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "The key metric for workshop bay utilization is:",
				"hi": "वर्कशॉप बे उपयोग का मुख्य मापदंड क्या है?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Productive hours billed versus hours available", "hi": "उपलब्ध घंटों की तुलना में बिल किए गए उत्पादक घंटे"}, Correct: true},
				{Text: map[string]string{"en": "Number of chairs in the waiting room", "hi": "प्रतीक्षालय में कुर्सियों की संख्या"}},
				{Text: map[string]string{"en": "Colour of the workshop walls", "hi": "वर्कशॉप की दीवारों का रंग"}},
				{Text: map[string]string{"en": "Size of the signboard", "hi": "साइनबोर्ड का आकार"}},
			},
		},
		{
			Role: models.UserRoleWorkshop, Step: 2, VehicleCategory: "4W", Difficulty: 4, Points: 2,
			Text: map[string]string{
				"en": "An electric car lift bay must additionally be equipped with:",
				"hi": "इलेक्ट्रिक कार लिफ्ट बे में अतिरिक्त रूप से क्या होना चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Insulated barriers and HV warning signage", "hi": "इंसुलेटेड बैरियर और HV चेतावनी संकेत"}, Correct: true},
				{Text: map[string]string{"en": "A petrol pump", "hi": "पेट्रोल पंप"}},
				{Text: map[string]string{"en": "An exhaust gas analyser", "hi": "एग्ज़ॉस्ट गैस एनालाइज़र"}},
				{Text: map[string]string{"en": "A carburetor cleaning station", "hi": "कार्बोरेटर सफाई स्टेशन"}},
			},
		},
		{
			Role: models.UserRoleWorkshop, Step: 2, Difficulty: 3, Points: 2,
			Text: map[string]string{
				"en": "Damaged lithium cells must be disposed of by:",
				"hi": "क्षतिग्रस्त लिथियम सेलों का निपटान कैसे होना चाहिए?",
			},
			Options: []Option{
				{Text: map[string]string{"en": "Handing them to an authorized e-waste recycler", "hi": "अधिकृत ई-वेस्ट रीसाइक्लर को सौंपकर"}, Correct: true},
				{Text: map[string]string{"en": "Throwing them in household garbage", "hi": "घरेलू कचरे में फेंककर"}},
				{Text: map[string]string{"en": "Burning them behind the workshop", "hi": "वर्कशॉप के पीछे जलाकर"}},
				{Text: map[string]string{"en": "Burying them in the ground", "hi": "ज़मीन में दबाकर"}},
			},
		},
	}
}
