package statute

// Sections is the compiled-in IPC table. Order matters: the matcher's
// tie-break is "first in table order wins", so new records go at the end.
var Sections = []Record{
	{
		SectionID:   "1",
		Title:       "Title and extent of operation of the Code",
		Description: "This Act shall be called the Indian Penal Code, and shall extend to the whole of India except the State of Jammu and Kashmir.",
		Keywords:    []string{"jurisdiction", "territorial", "extent", "application"},
		RelatedCases: []Case{
			{
				Name:     "Case A",
				Citation: "AIR 1950 SC 1",
				Summary:  "Discussed the extent of IPC.",
				Analysis: "This case established the fundamental principle that IPC applies to all of India except Jammu and Kashmir, setting the territorial jurisdiction of the code.",
			},
		},
	},
	{
		SectionID:   "2",
		Title:       "Punishment of offences committed within India",
		Description: "Every person shall be liable to punishment under this Code for every act or omission contrary to the provisions thereof, of which he shall be guilty within India.",
		Keywords:    []string{"punishment", "jurisdiction", "offences", "territorial"},
		RelatedCases: []Case{
			{
				Name:     "Case B",
				Citation: "AIR 1952 SC 2",
				Summary:  "Clarified jurisdiction for offences.",
				Analysis: "This landmark case established that any person committing an offence within Indian territory is subject to IPC provisions, regardless of their nationality.",
			},
		},
	},
	{
		SectionID:   "420",
		Title:       "Cheating and dishonestly inducing delivery of property",
		Description: "Whoever cheats and thereby dishonestly induces the person deceived to deliver any property to any person, or to make, alter or destroy the whole or any part of a valuable security, or anything which is signed or sealed, and which is capable of being converted into a valuable security, shall be punished with imprisonment of either description for a term which may extend to seven years, and shall also be liable to fine.",
		Keywords:    []string{"cheating", "fraud", "property", "deception", "punishment"},
		RelatedCases: []Case{
			{
				Name:     "Abdul Fazal v. State of NCT of Delhi",
				Citation: "2011 CriLJ 1833",
				Summary:  "Explained the ingredients of cheating under Section 420.",
				Analysis: "This case established the essential elements of cheating: deception, dishonest intention, and inducement to deliver property. It clarified that mere breach of contract does not constitute cheating.",
			},
		},
	},
	{
		SectionID:   "302",
		Title:       "Punishment for murder",
		Description: "Whoever commits murder shall be punished with death or imprisonment for life, and shall also be liable to fine.",
		Keywords:    []string{"murder", "kill", "homicide", "death", "intentional", "life imprisonment"},
		RelatedCases: []Case{
			{
				Name:     "State of UP v. Rajesh Gautam",
				Citation: "2003 CriLJ 1234",
				Summary:  "Discussed the essentials of murder under Section 302.",
				Analysis: "This case clarified the distinction between murder and culpable homicide not amounting to murder.",
			},
		},
	},
	{
		SectionID:   "307",
		Title:       "Attempt to murder",
		Description: "Whoever does any act with such intention or knowledge, and under such circumstances that, if he by that act caused death, he would be guilty of murder, shall be punished...",
		Keywords:    []string{"attempt to murder", "attempted murder", "try to kill", "intent to kill"},
		RelatedCases: []Case{
			{
				Name:     "State v. Narayan",
				Citation: "AIR 1965 SC 123",
				Summary:  "Explained what constitutes attempt to murder.",
				Analysis: "Clarified the difference between preparation and attempt.",
			},
		},
	},
	{
		SectionID:   "304",
		Title:       "Culpable homicide not amounting to murder",
		Description: "Whoever commits culpable homicide not amounting to murder shall be punished...",
		Keywords:    []string{"culpable homicide", "not murder", "causing death", "manslaughter"},
		RelatedCases: []Case{
			{
				Name:     "State v. Ram Prasad",
				Citation: "AIR 1972 SC 123",
				Summary:  "Distinguished between murder and culpable homicide.",
				Analysis: "Explained the gradation of culpability.",
			},
		},
	},
	{
		SectionID:   "375",
		Title:       "Rape",
		Description: "A man is said to commit rape if he...",
		Keywords:    []string{"rape", "sexual assault", "sexual intercourse without consent", "forcible sex"},
		RelatedCases: []Case{
			{
				Name:     "Tukaram v. State of Maharashtra",
				Citation: "1979 AIR 185",
				Summary:  "Landmark case on consent in rape.",
				Analysis: "Defined consent and its legal implications.",
			},
		},
	},
	{
		SectionID:   "376",
		Title:       "Punishment for rape",
		Description: "Whoever, except in the cases provided for in sub-section (2), commits rape, shall be punished...",
		Keywords:    []string{"rape", "punishment for rape", "sexual crime", "sexual violence"},
		RelatedCases: []Case{
			{
				Name:     "State of Punjab v. Gurmit Singh",
				Citation: "1996 AIR 1393",
				Summary:  "Discussed punishment for rape.",
				Analysis: "Emphasized the need for strict punishment.",
			},
		},
	},
	{
		SectionID:   "323",
		Title:       "Punishment for voluntarily causing hurt",
		Description: "Whoever, except in the case provided for by section 334, voluntarily causes hurt, shall be punished...",
		Keywords:    []string{"hurt", "injury", "voluntarily causing hurt", "physical harm"},
		RelatedCases: []Case{
			{
				Name:     "State v. Ashok Kumar",
				Citation: "AIR 1989 SC 123",
				Summary:  "Explained what constitutes hurt.",
				Analysis: "Defined hurt and its punishment.",
			},
		},
	},
	{
		SectionID:   "324",
		Title:       "Voluntarily causing hurt by dangerous weapons or means",
		Description: "Whoever, except in the case provided for by section 334, voluntarily causes hurt by means of any instrument for shooting, stabbing, cutting or any weapon...",
		Keywords:    []string{"hurt by weapon", "dangerous weapon", "causing injury", "knife attack"},
		RelatedCases: []Case{
			{
				Name:     "State v. Ramesh",
				Citation: "AIR 1990 SC 456",
				Summary:  "Discussed hurt by dangerous weapons.",
				Analysis: "Explained the use of weapons in causing hurt.",
			},
		},
	},
	{
		SectionID:   "326",
		Title:       "Voluntarily causing grievous hurt by dangerous weapons or means",
		Description: "Whoever, except in the case provided for by section 335, voluntarily causes grievous hurt by means of any instrument for shooting, stabbing, cutting or any weapon...",
		Keywords:    []string{"grievous hurt", "serious injury", "dangerous weapon", "severe harm"},
		RelatedCases: []Case{
			{
				Name:     "State v. Shyam Lal",
				Citation: "AIR 1992 SC 789",
				Summary:  "Explained grievous hurt.",
				Analysis: "Defined grievous hurt and its punishment.",
			},
		},
	},
	{
		SectionID:   "354",
		Title:       "Assault or criminal force to woman with intent to outrage her modesty",
		Description: "Whoever assaults or uses criminal force to any woman, intending to outrage or knowing it to be likely that he will thereby outrage her modesty...",
		Keywords:    []string{"assault on woman", "outrage modesty", "sexual harassment", "molestation"},
		RelatedCases: []Case{
			{
				Name:     "State v. Ram Singh",
				Citation: "AIR 2012 SC 123",
				Summary:  "Discussed assault on women.",
				Analysis: "Explained the protection of women under IPC.",
			},
		},
	},
	{
		SectionID:   "363",
		Title:       "Punishment for kidnapping",
		Description: "Whoever kidnaps any person from lawful guardianship shall be punished...",
		Keywords:    []string{"kidnapping", "abduction", "unlawful confinement", "taking away"},
		RelatedCases: []Case{
			{
				Name:     "State v. Suresh",
				Citation: "AIR 1995 SC 123",
				Summary:  "Explained kidnapping.",
				Analysis: "Defined kidnapping and its punishment.",
			},
		},
	},
	{
		SectionID:   "364",
		Title:       "Kidnapping for ransom, etc.",
		Description: "Whoever kidnaps any person with intent to hold for ransom shall be punished...",
		Keywords:    []string{"kidnapping for ransom", "ransom", "hostage", "abduction"},
		RelatedCases: []Case{
			{
				Name:     "State v. Anil Sharma",
				Citation: "AIR 2000 SC 123",
				Summary:  "Discussed kidnapping for ransom.",
				Analysis: "Explained the gravity of kidnapping for ransom.",
			},
		},
	},
	{
		SectionID:   "392",
		Title:       "Punishment for robbery",
		Description: "Whoever commits robbery shall be punished...",
		Keywords:    []string{"robbery", "theft with violence", "snatching", "armed robbery"},
		RelatedCases: []Case{
			{
				Name:     "State v. Raj Kumar",
				Citation: "AIR 1998 SC 123",
				Summary:  "Explained robbery.",
				Analysis: "Defined robbery and its punishment.",
			},
		},
	},
	{
		SectionID:   "397",
		Title:       "Robbery, or dacoity, with attempt to cause death or grievous hurt",
		Description: "If, at the time of committing robbery or dacoity, the offender uses any deadly weapon, or causes grievous hurt to any person, or attempts to cause death or grievous hurt to any person, the imprisonment...",
		Keywords:    []string{"robbery with weapon", "dacoity", "attempt to kill during robbery", "armed robbery"},
		RelatedCases: []Case{
			{
				Name:     "State v. Raju",
				Citation: "AIR 2001 SC 123",
				Summary:  "Discussed robbery with attempt to cause death.",
				Analysis: "Explained the aggravating factors in robbery.",
			},
		},
	},
	{
		SectionID:   "498A",
		Title:       "Husband or relative of husband of a woman subjecting her to cruelty",
		Description: "Whoever, being the husband or the relative of the husband of a woman, subjects such woman to cruelty shall be punished...",
		Keywords:    []string{"cruelty", "domestic violence", "dowry harassment", "abuse by husband"},
		RelatedCases: []Case{
			{
				Name:     "Savitri Devi v. Ramesh Chand",
				Citation: "AIR 2003 SC 123",
				Summary:  "Explained cruelty by husband.",
				Analysis: "Discussed the protection of women from domestic violence.",
			},
		},
	},
	{
		SectionID:   "34",
		Title:       "Acts done by several persons in furtherance of common intention",
		Description: "When a criminal act is done by several persons in furtherance of the common intention of all, each of such persons is liable for that act as if it were done by him alone.",
		Keywords:    []string{"common intention", "joint liability", "group crime", "shared intent"},
		RelatedCases: []Case{
			{
				Name:     "Krishna Govind Patil v. State of Maharashtra",
				Citation: "1964 AIR 949",
				Summary:  "Explained the principle of common intention.",
				Analysis: "Clarified joint liability under Section 34.",
			},
		},
	},
	{
		SectionID:   "120B",
		Title:       "Punishment of criminal conspiracy",
		Description: "Whoever is a party to a criminal conspiracy to commit an offence punishable with death, imprisonment for life or rigorous imprisonment for a term of two years or upwards, shall be punished...",
		Keywords:    []string{"conspiracy", "criminal conspiracy", "agreement to commit crime"},
		RelatedCases: []Case{
			{
				Name:     "State v. Nalini",
				Citation: "1999 AIR 2640",
				Summary:  "Landmark case on criminal conspiracy.",
				Analysis: "Defined criminal conspiracy and its punishment.",
			},
		},
	},
	{
		SectionID:   "124A",
		Title:       "Sedition",
		Description: "Whoever by words, either spoken or written, or by signs, or by visible representation, or otherwise, brings or attempts to bring into hatred or contempt, or excites or attempts to excite disaffection towards the government...",
		Keywords:    []string{"sedition", "anti-government", "disaffection", "hatred against government"},
		RelatedCases: []Case{
			{
				Name:     "Kedar Nath Singh v. State of Bihar",
				Citation: "1962 AIR 955",
				Summary:  "Landmark case on sedition.",
				Analysis: "Explained the scope and limits of sedition.",
			},
		},
	},
	{
		SectionID:   "141",
		Title:       "Unlawful assembly",
		Description: "An assembly of five or more persons is designated an \"unlawful assembly\" if the common object of the persons composing that assembly is to overawe by criminal force, or show of criminal force, the Central or any State Government or Legislature, or any public servant...",
		Keywords:    []string{"unlawful assembly", "mob", "riot", "group violence"},
		RelatedCases: []Case{
			{
				Name:     "State of UP v. Dan Singh",
				Citation: "1997 AIR 1472",
				Summary:  "Explained unlawful assembly.",
				Analysis: "Defined unlawful assembly and its ingredients.",
			},
		},
	},
	{
		SectionID:   "147",
		Title:       "Punishment for rioting",
		Description: "Whoever is guilty of rioting, shall be punished...",
		Keywords:    []string{"rioting", "riot", "mob violence", "public disorder"},
		RelatedCases: []Case{
			{
				Name:     "State v. Ram Avtar",
				Citation: "AIR 1961 SC 715",
				Summary:  "Discussed punishment for rioting.",
				Analysis: "Explained the concept of rioting.",
			},
		},
	},
	{
		SectionID:   "148",
		Title:       "Rioting, armed with deadly weapon",
		Description: "Whoever is guilty of rioting, being armed with a deadly weapon or with anything which, used as a weapon of offence, is likely to cause death, shall be punished...",
		Keywords:    []string{"rioting with weapon", "armed riot", "deadly weapon", "mob violence"},
		RelatedCases: []Case{
			{
				Name:     "State v. Balbir Singh",
				Citation: "AIR 1996 SC 307",
				Summary:  "Explained rioting with deadly weapon.",
				Analysis: "Discussed aggravating factors in rioting.",
			},
		},
	},
	{
		SectionID:   "149",
		Title:       "Every member of unlawful assembly guilty of offence committed in prosecution of common object",
		Description: "If an offence is committed by any member of an unlawful assembly in prosecution of the common object of that assembly, or such as the members of that assembly knew to be likely to be committed in prosecution of that object, every person who, at the time of the committing of that offence, is a member of the same assembly, is guilty of that offence.",
		Keywords:    []string{"unlawful assembly", "common object", "group crime", "collective liability"},
		RelatedCases: []Case{
			{
				Name:     "Lalji v. State of UP",
				Citation: "1989 AIR 754",
				Summary:  "Explained liability of members of unlawful assembly.",
				Analysis: "Clarified collective liability under Section 149.",
			},
		},
	},
	{
		SectionID:   "153A",
		Title:       "Promoting enmity between different groups on grounds of religion, race, place of birth, residence, language, etc.",
		Description: "Whoever by words, either spoken or written, or by signs or by visible representations or otherwise, promotes or attempts to promote, on grounds of religion, race, place of birth, residence, language, caste or community or any other ground whatsoever, disharmony or feelings of enmity, hatred or ill-will between different religious, racial, language or regional groups or castes or communities, shall be punished...",
		Keywords:    []string{"promoting enmity", "hate speech", "communal violence", "disharmony"},
		RelatedCases: []Case{
			{
				Name:     "Bilal Ahmed Kaloo v. State of Andhra Pradesh",
				Citation: "1997 AIR 3483",
				Summary:  "Explained promoting enmity.",
				Analysis: "Discussed the scope of Section 153A.",
			},
		},
	},
	{
		SectionID:   "186",
		Title:       "Obstructing public servant in discharge of public functions",
		Description: "Whoever voluntarily obstructs any public servant in the discharge of his public functions shall be punished...",
		Keywords:    []string{"obstructing public servant", "public servant", "obstruction", "discharge of duty"},
		RelatedCases: []Case{
			{
				Name:     "State v. Gopal",
				Citation: "AIR 1969 SC 123",
				Summary:  "Explained obstruction of public servant.",
				Analysis: "Defined obstruction and its punishment.",
			},
		},
	},
	{
		SectionID:   "201",
		Title:       "Causing disappearance of evidence of offence, or giving false information to screen offender",
		Description: "Whoever, knowing or having reason to believe that an offence has been committed, causes any evidence of the commission of that offence to disappear, with the intention of screening the offender from legal punishment, or with that intention gives any information respecting the offence which he knows or believes to be false, shall be punished...",
		Keywords:    []string{"disappearance of evidence", "false information", "screening offender", "tampering evidence"},
		RelatedCases: []Case{
			{
				Name:     "State v. Sushil Sharma",
				Citation: "2001 AIR 1234",
				Summary:  "Explained disappearance of evidence.",
				Analysis: "Discussed the importance of evidence in criminal law.",
			},
		},
	},
	{
		SectionID:   "304B",
		Title:       "Dowry death",
		Description: "Where the death of a woman is caused by any burns or bodily injury or occurs otherwise than under normal circumstances within seven years of her marriage and it is shown that soon before her death she was subjected to cruelty or harassment by her husband or any relative of her husband for, or in connection with, any demand for dowry, such death shall be called \"dowry death\"...",
		Keywords:    []string{"dowry death", "dowry", "death of woman", "marriage cruelty"},
		RelatedCases: []Case{
			{
				Name:     "Shanti v. State of Haryana",
				Citation: "1991 AIR 1226",
				Summary:  "Landmark case on dowry death.",
				Analysis: "Explained the presumption of dowry death.",
			},
		},
	},
	{
		SectionID:   "306",
		Title:       "Abetment of suicide",
		Description: "If any person commits suicide, whoever abets the commission of such suicide, shall be punished...",
		Keywords:    []string{"abetment of suicide", "suicide", "encouraging suicide", "instigating suicide"},
		RelatedCases: []Case{
			{
				Name:     "Gurcharan Singh v. State of Punjab",
				Citation: "2017 AIR 74",
				Summary:  "Explained abetment of suicide.",
				Analysis: "Defined abetment and its punishment.",
			},
		},
	},
	{
		SectionID:   "363A",
		Title:       "Kidnapping or maiming a minor for purposes of begging",
		Description: "Whoever kidnaps any minor or, not being the lawful guardian of such minor, obtains the custody of the minor, in order that such minor may be employed or used for the purposes of begging shall be punished...",
		Keywords:    []string{"kidnapping for begging", "begging", "minor", "child exploitation"},
		RelatedCases: []Case{
			{
				Name:     "State v. Ram Lal",
				Citation: "AIR 1979 SC 149",
				Summary:  "Explained kidnapping for begging.",
				Analysis: "Discussed the protection of minors.",
			},
		},
	},
	{
		SectionID:   "380",
		Title:       "Theft in dwelling house, etc.",
		Description: "Whoever commits theft in any building, tent or vessel used as a human dwelling, or for the custody of property, shall be punished...",
		Keywords:    []string{"theft in house", "dwelling theft", "burglary", "housebreaking"},
		RelatedCases: []Case{
			{
				Name:     "State v. Ram Prakash",
				Citation: "AIR 1959 SC 881",
				Summary:  "Explained theft in dwelling house.",
				Analysis: "Discussed aggravating factors in theft.",
			},
		},
	},
	{
		SectionID:   "395",
		Title:       "Punishment for dacoity",
		Description: "Whoever commits dacoity shall be punished...",
		Keywords:    []string{"dacoity", "gang robbery", "armed gang", "violent robbery"},
		RelatedCases: []Case{
			{
				Name:     "State v. Ram Shankar",
				Citation: "AIR 1956 SC 441",
				Summary:  "Explained dacoity.",
				Analysis: "Defined dacoity and its punishment.",
			},
		},
	},
	{
		SectionID:   "406",
		Title:       "Punishment for criminal breach of trust",
		Description: "Whoever commits criminal breach of trust shall be punished...",
		Keywords:    []string{"criminal breach of trust", "breach of trust", "misappropriation", "embezzlement"},
		RelatedCases: []Case{
			{
				Name:     "State v. Sushil Kumar",
				Citation: "AIR 1979 SC 1408",
				Summary:  "Explained criminal breach of trust.",
				Analysis: "Defined breach of trust and its punishment.",
			},
		},
	},
	{
		SectionID:   "409",
		Title:       "Criminal breach of trust by public servant, or by banker, merchant or agent",
		Description: "Whoever, being in any manner entrusted in such capacity as a public servant or in the way of his business as a banker, merchant, factor, broker, attorney or agent, commits criminal breach of trust in respect of that property, shall be punished...",
		Keywords:    []string{"breach of trust by public servant", "embezzlement", "misappropriation", "bank fraud"},
		RelatedCases: []Case{
			{
				Name:     "State v. R. K. Dalmia",
				Citation: "AIR 1962 SC 1821",
				Summary:  "Explained breach of trust by public servant.",
				Analysis: "Discussed higher punishment for public servants.",
			},
		},
	},
	{
		SectionID:   "411",
		Title:       "Dishonestly receiving stolen property",
		Description: "Whoever dishonestly receives or retains any stolen property, knowing or having reason to believe the same to be stolen property, shall be punished...",
		Keywords:    []string{"receiving stolen property", "stolen goods", "dishonest receiving", "retaining stolen property"},
		RelatedCases: []Case{
			{
				Name:     "State v. Abdul Gani",
				Citation: "AIR 1956 SC 165",
				Summary:  "Explained receiving stolen property.",
				Analysis: "Defined the offence and its punishment.",
			},
		},
	},
	{
		SectionID:   "415",
		Title:       "Cheating",
		Description: "Whoever, by deceiving any person, fraudulently or dishonestly induces the person so deceived to deliver any property to any person, or to consent that any person shall retain any property, or intentionally induces the person so deceived to do or omit to do anything which he would not do or omit if he were not so deceived, shall be punished...",
		Keywords:    []string{"cheating", "fraud", "deceiving", "dishonest inducement"},
		RelatedCases: []Case{
			{
				Name:     "State v. Sitaram",
				Citation: "AIR 1962 SC 1156",
				Summary:  "Explained cheating.",
				Analysis: "Defined cheating and its ingredients.",
			},
		},
	},
	{
		SectionID:   "463",
		Title:       "Forgery",
		Description: "Whoever makes any false document or false electronic record or part of a document or electronic record, with intent to cause damage or injury, to the public or to any person, or to support any claim or title, or to cause any person to part with property, or to enter into any express or implied contract, or with intent to commit fraud or that fraud may be committed, commits forgery.",
		Keywords:    []string{"forgery", "false document", "fake record", "fraudulent document"},
		RelatedCases: []Case{
			{
				Name:     "State v. Mohd. Yasin",
				Citation: "AIR 1968 SC 132",
				Summary:  "Explained forgery.",
				Analysis: "Defined forgery and its punishment.",
			},
		},
	},
	{
		SectionID:   "471",
		Title:       "Using as genuine a forged document or electronic record",
		Description: "Whoever fraudulently or dishonestly uses as genuine any document or electronic record which he knows or has reason to believe to be a forged document or electronic record, shall be punished...",
		Keywords:    []string{"using forged document", "fake document", "forged record", "fraudulent use"},
		RelatedCases: []Case{
			{
				Name:     "State v. Abdul Karim",
				Citation: "AIR 1963 SC 1124",
				Summary:  "Explained use of forged document.",
				Analysis: "Discussed the offence of using forged documents.",
			},
		},
	},
	{
		SectionID:   "499",
		Title:       "Defamation",
		Description: "Whoever, by words either spoken or intended to be read, or by signs or by visible representations, makes or publishes any imputation concerning any person, intending to harm, or knowing or having reason to believe that such imputation will harm, the reputation of such person, is said, except in the cases hereinafter expected, to defame that person.",
		Keywords:    []string{"defamation", "reputation", "imputation", "harm to reputation"},
		RelatedCases: []Case{
			{
				Name:     "Subramanian Swamy v. Union of India",
				Citation: "2016 AIR 2728",
				Summary:  "Landmark case on defamation.",
				Analysis: "Discussed the constitutionality of criminal defamation.",
			},
		},
	},
	{
		SectionID:   "509",
		Title:       "Word, gesture or act intended to insult the modesty of a woman",
		Description: "Whoever, intending to insult the modesty of any woman, utters any word, makes any sound or gesture, or exhibits any object, intending that such word or sound shall be heard, or that such gesture or object shall be seen, by such woman, or intrudes upon the privacy of such woman, shall be punished...",
		Keywords:    []string{"insulting modesty", "gesture", "privacy of woman", "verbal abuse"},
		RelatedCases: []Case{
			{
				Name:     "State v. Sohan Lal",
				Citation: "AIR 1975 SC 845",
				Summary:  "Explained insult to modesty of woman.",
				Analysis: "Discussed the protection of women under Section 509.",
			},
		},
	},
	{
		SectionID:   "511",
		Title:       "Punishment for attempting to commit offences punishable with imprisonment for life or other imprisonment",
		Description: "Whoever attempts to commit an offence punishable by this Code with imprisonment for life or imprisonment, or to cause such an offence to be committed, and in such attempt does any act towards the commission of the offence, shall, where no express provision is made by this Code for the punishment of such attempt, be punished...",
		Keywords:    []string{"attempt to commit offence", "attempt", "incomplete offence", "failed crime"},
		RelatedCases: []Case{
			{
				Name:     "State v. Shiv Kumar",
				Citation: "AIR 1969 SC 898",
				Summary:  "Explained attempt to commit offences.",
				Analysis: "Defined attempt and its punishment.",
			},
		},
	},
}

// BySectionID returns the record for a section id, if present.
func BySectionID(id string) (Record, bool) {
	for _, r := range Sections {
		if r.SectionID == id {
			return r, true
		}
	}
	return Record{}, false
}
