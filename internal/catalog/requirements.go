package catalog

// requirements is the authoritative 35-entry checklist. Order defines the
// canonical section grouping; ids are stable and referenced from prompts,
// model output, and persisted findings.
var requirements = []Requirement{
	// --- Section I: Contractual framework ---
	{
		ID:            "I.1",
		Name:          "Written outsourcing agreement",
		Reference:     "EBA/GL/2019/02 §74",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The rights and obligations of both parties are set out in a single written agreement (or master agreement with annexes) signed by both parties.",
		RegulatoryText: "The outsourcing agreement between the institution and the service provider should be set out in a written agreement.",
		Keywords:       []string{"written agreement", "contract", "annex", "signature"},
	},
	{
		ID:            "I.2",
		Name:          "Description of the outsourced function",
		Reference:     "DORA Art. 30(2)(a)",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The contract contains a clear and complete description of all functions and ICT services to be provided, including (1) the scope of services, (2) the locations where they are provided, and (3) whether subcontracting of the function is permitted.",
		RegulatoryText: "The contractual arrangements shall include a clear and complete description of all functions and ICT services to be provided by the ICT third-party service provider.",
		Keywords:       []string{"scope of services", "service description", "functions", "perimeter"},
	},
	{
		ID:            "I.3",
		Name:          "Service levels and performance targets",
		Reference:     "DORA Art. 30(2)(e)",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "Service level descriptions include precise quantitative and qualitative performance targets (availability, response times, capacity) enabling effective monitoring and corrective action.",
		RegulatoryText: "The contractual arrangements shall include service level descriptions, including updates and revisions thereof.",
		Keywords:       []string{"SLA", "service level", "availability", "performance target"},
	},
	{
		ID:            "I.4",
		Name:          "Duration, renewal and notice periods",
		Reference:     "EBA/GL/2019/02 §75(a)",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The contract states (1) its start and end dates, (2) conditions of renewal, and (3) notice periods for ordinary termination by either party.",
		RegulatoryText: "The outsourcing agreement should set out the start date and end date, where applicable, of the agreement and the notice periods for the service provider and the institution.",
		Keywords:       []string{"duration", "renewal", "notice period", "termination date"},
	},
	{
		ID:            "I.5",
		Name:          "Governing law and jurisdiction",
		Reference:     "EBA/GL/2019/02 §75(b)",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityMinor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "Governing law of the agreement is stated.",
		RegulatoryText: "The outsourcing agreement should set out the governing law of the agreement.",
		Keywords:       []string{"governing law", "jurisdiction", "applicable law"},
	},
	{
		ID:            "I.6",
		Name:          "Financial obligations of the parties",
		Reference:     "EBA/GL/2019/02 §75(c)",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityMinor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "Pricing, invoicing and the financial obligations of each party are described, including the treatment of costs arising at termination.",
		RegulatoryText: "The outsourcing agreement should set out the parties' financial obligations.",
		Keywords:       []string{"pricing", "fees", "invoicing", "financial obligations"},
	},
	{
		ID:            "I.7",
		Name:          "Access, audit and information rights of the institution and the supervisor",
		Reference:     "DORA Art. 30(3)(e); EBA/GL/2019/02 §87",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The contract grants, expressly and without restriction, (1) complete access, inspection and audit rights to the financial entity, (2) the same rights to the competent authority and any appointed third party, and (3) the right to take copies of relevant documentation on-site and off-site.",
		RegulatoryText: "The contractual arrangements shall grant the financial entity unrestricted rights of access, inspection and audit by the financial entity, or an appointed third party, and by the competent authority.",
		Keywords:       []string{"audit rights", "access rights", "inspection", "competent authority", "ACPR"},
	},
	{
		ID:            "I.8",
		Name:          "Provider reporting obligations",
		Reference:     "EBA/GL/2019/02 §75(g)",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider commits to periodic reporting on service performance and to ad hoc reporting on any development that may materially affect its ability to perform the outsourced function.",
		RegulatoryText: "The outsourcing agreement should set out the agreed service levels and reporting obligations of the service provider towards the institution.",
		Keywords:       []string{"reporting", "periodic report", "material change"},
	},
	{
		ID:            "I.9",
		Name:          "Insurance coverage",
		Reference:     "EBA/GL/2019/02 §75(i)",
		Section:       "I",
		SectionName:   "Contractual framework",
		Criticality:   CriticalityMinor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "Mandatory insurance against identified risks is stated.",
		RegulatoryText: "The outsourcing agreement should set out, where relevant, the obligation of the service provider to take out mandatory insurance against certain risks and, where applicable, the level of insurance cover requested.",
		Keywords:       []string{"insurance", "liability cover", "professional indemnity"},
	},

	// --- Section II: Data and system security ---
	{
		ID:            "II.1",
		Name:          "Confidentiality and protection of data",
		Reference:     "DORA Art. 30(2)(c); arrêté du 3 novembre 2014 art. 237",
		Section:       "II",
		SectionName:   "Data and system security",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider is bound by (1) an explicit confidentiality undertaking covering the institution's data and its customers' data, (2) provisions ensuring availability, authenticity, integrity and confidentiality of data, and (3) restrictions on any use of the data beyond the outsourced service.",
		RegulatoryText: "The contractual arrangements shall include provisions on availability, authenticity, integrity and confidentiality in relation to the protection of data, including personal data.",
		Keywords:       []string{"confidentiality", "data protection", "integrity", "availability"},
	},
	{
		ID:            "II.2",
		Name:          "Data processing locations",
		Reference:     "DORA Art. 30(2)(b)",
		Section:       "II",
		SectionName:   "Data and system security",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The contract identifies (1) the regions or countries where the function is provided and where data is processed and stored, and (2) an obligation to notify the institution in advance of any envisaged change of location.",
		RegulatoryText: "The contractual arrangements shall include the locations, namely the regions or countries, where the contracted or subcontracted functions and ICT services are to be provided and where data is to be processed, including the storage location.",
		Keywords:       []string{"data location", "storage location", "country", "transfer", "relocation"},
	},
	{
		ID:            "II.3",
		Name:          "Encryption of data in transit and at rest",
		Reference:     "DORA Art. 9(2)",
		Section:       "II",
		SectionName:   "Data and system security",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "Security commitments cover encryption of data in transit and at rest, with key management responsibilities assigned.",
		RegulatoryText: "Financial entities shall use ICT solutions and processes that ensure the security of the means of transfer of data and minimise the risk of corruption or loss of data.",
		Keywords:       []string{"encryption", "cryptography", "key management", "TLS"},
	},
	{
		ID:            "II.4",
		Name:          "Access management and authentication",
		Reference:     "DORA Art. 9(4)(c)",
		Section:       "II",
		SectionName:   "Data and system security",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider commits to documented access management: (1) least-privilege access to the institution's data and systems, (2) strong authentication for privileged and remote access, and (3) periodic access reviews.",
		RegulatoryText: "Financial entities shall implement policies and protocols for strong authentication mechanisms and protection of cryptographic keys.",
		Keywords:       []string{"access control", "least privilege", "authentication", "MFA"},
	},
	{
		ID:            "II.5",
		Name:          "Return and deletion of data at exit",
		Reference:     "DORA Art. 30(2)(d)",
		Section:       "II",
		SectionName:   "Data and system security",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "On termination or insolvency of the provider, the contract guarantees (1) return of all institution data in an easily accessible format, (2) certified deletion of remaining copies within a stated period, and (3) no retention right of the provider over the data.",
		RegulatoryText: "The contractual arrangements shall include provisions ensuring access, recovery and return in an easily accessible format of personal and non-personal data processed by the financial entity in the event of insolvency, resolution, discontinuation of business operations or termination of the contractual arrangements.",
		Keywords:       []string{"data return", "deletion", "restitution", "insolvency", "format"},
	},
	{
		ID:            "II.6",
		Name:          "Security incident handling by the provider",
		Reference:     "DORA Art. 30(2)(f)",
		Section:       "II",
		SectionName:   "Data and system security",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider is obliged to provide assistance when an ICT incident related to the outsourced service occurs, at no additional cost or at a cost determined ex ante, and to cooperate in the investigation.",
		RegulatoryText: "The contractual arrangements shall include the obligation of the ICT third-party service provider to provide assistance to the financial entity at no additional cost, or at a cost that is determined ex-ante, when an ICT incident that is related to the ICT service provided to the financial entity occurs.",
		Keywords:       []string{"incident", "assistance", "investigation", "cooperation"},
	},
	{
		ID:            "II.7",
		Name:          "Personal data protection compliance",
		Reference:     "EBA/GL/2019/02 §82; GDPR Art. 28",
		Section:       "II",
		SectionName:   "Data and system security",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "Where personal data is processed, the contract incorporates the processor obligations of GDPR Art. 28, including instructions of the controller, sub-processor conditions and assistance with data subject rights.",
		RegulatoryText: "Institutions should ensure that the service provider complies with appropriate IT security standards and, where relevant, with EU data protection requirements.",
		Keywords:       []string{"GDPR", "personal data", "processor", "data subject"},
	},

	// --- Section III: Audit and oversight ---
	{
		ID:            "III.1",
		Name:          "Unrestricted on-site inspection and audit right",
		Reference:     "EBA/GL/2019/02 §87(a); arrêté du 3 novembre 2014 art. 238",
		Section:       "III",
		SectionName:   "Audit and oversight",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "For critical or important functions the institution holds an unrestricted right to perform on-site inspections at the provider's premises, including (1) full access to relevant business premises, (2) full access to devices, systems and data, and (3) no contractual pre-condition that would impair the effectiveness of the audit.",
		RegulatoryText: "Institutions should ensure that the outsourcing agreement grants them, and their competent authorities, complete access to all relevant business premises, including the full range of relevant devices, systems, networks, information and data used for providing the outsourced function.",
		Keywords:       []string{"on-site audit", "inspection", "premises", "unrestricted"},
	},
	{
		ID:            "III.2",
		Name:          "Ongoing performance monitoring right",
		Reference:     "EBA/GL/2019/02 §100",
		Section:       "III",
		SectionName:   "Audit and oversight",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The institution has the contractual right to monitor the provider's performance on an ongoing basis, on the basis of the agreed service levels and reports.",
		RegulatoryText: "Institutions should monitor, on an ongoing basis, the performance of service providers with regard to all outsourcing arrangements.",
		Keywords:       []string{"monitoring", "oversight", "performance review"},
	},
	{
		ID:            "III.3",
		Name:          "Use of pooled audits and certifications",
		Reference:     "EBA/GL/2019/02 §91",
		Section:       "III",
		SectionName:   "Audit and oversight",
		Criticality:   CriticalityMinor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "Where third-party certifications or pooled audit reports are relied on, the contract preserves the institution's right to request their scope be expanded and does not make them the exclusive audit mechanism.",
		RegulatoryText: "Institutions may use pooled audits and third-party certifications, provided the contractual right to perform individual audits is not contractually waived.",
		Keywords:       []string{"pooled audit", "certification", "ISAE 3402", "SOC 2"},
	},
	{
		ID:            "III.4",
		Name:          "Supervisor access to provider premises and data",
		Reference:     "DORA Art. 30(3)(e)",
		Section:       "III",
		SectionName:   "Audit and oversight",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "The competent authority and resolution authority are expressly granted the same access, inspection and audit rights as the institution, exercisable directly against the provider.",
		RegulatoryText: "The contractual arrangements shall grant unrestricted rights of access, inspection and audit to the competent authority and the resolution authority, including the right to take copies of relevant documentation.",
		Keywords:       []string{"competent authority", "supervisor", "resolution authority", "access"},
	},
	{
		ID:            "III.5",
		Name:          "Cooperation with competent authorities",
		Reference:     "arrêté du 3 novembre 2014 art. 239",
		Section:       "III",
		SectionName:   "Audit and oversight",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider undertakes to cooperate fully with the ACPR and any other competent authority, including answering requests for information directly.",
		RegulatoryText: "The agreement shall require the service provider to cooperate with the Autorité de contrôle prudentiel et de résolution with respect to the outsourced activities.",
		Keywords:       []string{"cooperation", "ACPR", "regulator", "information request"},
	},
	{
		ID:            "III.6",
		Name:          "Defined indicators and remediation process",
		Reference:     "EBA/GL/2019/02 §101",
		Section:       "III",
		SectionName:   "Audit and oversight",
		Criticality:   CriticalityMinor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "Key performance and key risk indicators are defined together with an escalation and remediation process when targets are missed.",
		RegulatoryText: "Institutions should define the measures to take if the performance of the service provider is inadequate.",
		Keywords:       []string{"KPI", "KRI", "escalation", "remediation"},
	},

	// --- Section IV: Subcontracting chain ---
	{
		ID:            "IV.1",
		Name:          "Conditions for subcontracting critical functions",
		Reference:     "DORA Art. 30(2)(a); EBA/GL/2019/02 §78",
		Section:       "IV",
		SectionName:   "Subcontracting chain",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "The contract states whether subcontracting of the critical or important function, or material parts of it, is permitted and under which conditions, including the requirement that subcontractors meet the same contractual obligations.",
		RegulatoryText: "The contractual arrangements shall specify whether subcontracting of an ICT service supporting a critical or important function, or material parts thereof, is permitted and, when that is the case, the conditions applying to such subcontracting.",
		Keywords:       []string{"subcontracting", "sub-outsourcing", "conditions", "chain"},
	},
	{
		ID:            "IV.2",
		Name:          "Notification of subcontracting changes",
		Reference:     "EBA/GL/2019/02 §78(d)",
		Section:       "IV",
		SectionName:   "Subcontracting chain",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider must notify the institution of any planned addition or replacement of a subcontractor within a stated advance period, sufficient to allow a risk assessment before the change takes effect.",
		RegulatoryText: "The service provider should be obliged to notify the institution of any planned sub-outsourcing, or material changes thereof, within an agreed notice period.",
		Keywords:       []string{"notification", "advance notice", "subcontractor change"},
	},
	{
		ID:            "IV.3",
		Name:          "Right to object to subcontracting changes",
		Reference:     "EBA/GL/2019/02 §79",
		Section:       "IV",
		SectionName:   "Subcontracting chain",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "The institution holds (1) a right to object to a planned subcontracting change and (2) a termination right if the change is implemented despite the objection.",
		RegulatoryText: "Institutions should ensure that they have the right to object to intended sub-outsourcing, or material changes thereof, or that explicit approval is required, and the right to terminate the agreement in case of undue sub-outsourcing.",
		Keywords:       []string{"objection", "approval", "termination", "sub-outsourcing"},
	},
	{
		ID:            "IV.4",
		Name:          "Flow-down of obligations to subcontractors",
		Reference:     "EBA/GL/2019/02 §78(e)",
		Section:       "IV",
		SectionName:   "Subcontracting chain",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider contractually ensures that subcontractors are bound by obligations equivalent to its own, in particular audit and access rights, security commitments and confidentiality.",
		RegulatoryText: "The service provider should ensure that sub-contractors comply with the obligations applicable to the service provider, including audit and access rights and data security.",
		Keywords:       []string{"flow-down", "equivalent obligations", "back-to-back"},
	},
	{
		ID:            "IV.5",
		Name:          "Oversight of the full subcontracting chain",
		Reference:     "DORA Art. 29(2)",
		Section:       "IV",
		SectionName:   "Subcontracting chain",
		Criticality:   CriticalityMinor,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "The provider remains fully responsible for subcontracted services and keeps the institution informed of the subcontracting chain relevant to the critical function.",
		RegulatoryText: "Financial entities shall weigh benefits and risks where the subcontracting chain concerns ICT services supporting a critical or important function, and maintain visibility over that chain.",
		Keywords:       []string{"chain visibility", "responsibility", "fourth party"},
	},

	// --- Section V: Exit and reversibility ---
	{
		ID:            "V.1",
		Name:          "Documented exit strategy and reversibility plan",
		Reference:     "DORA Art. 28(8); EBA/GL/2019/02 §106",
		Section:       "V",
		SectionName:   "Exit and reversibility",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "A documented exit plan exists for the critical or important function, covering (1) transfer of the service to another provider or reintegration in-house, (2) migration of data and configurations, and (3) the provider's concrete reversibility obligations during the exit.",
		RegulatoryText: "Financial entities shall put in place exit strategies for ICT services supporting critical or important functions. The exit strategies shall take into account risks that may emerge at the level of ICT third-party service providers and shall be sufficiently tested.",
		Keywords:       []string{"exit strategy", "reversibility", "exit plan", "migration"},
	},
	{
		ID:            "V.2",
		Name:          "Transition assistance",
		Reference:     "DORA Art. 30(3)(f)",
		Section:       "V",
		SectionName:   "Exit and reversibility",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider commits to assist the institution during any transition to a new provider or back in-house, on terms and at costs determined in the contract.",
		RegulatoryText: "The contractual arrangements shall include the obligation of the ICT third-party service provider to participate fully in an orderly transfer of the service.",
		Keywords:       []string{"transition", "assistance", "handover"},
	},
	{
		ID:            "V.3",
		Name:          "Termination rights",
		Reference:     "DORA Art. 28(7)",
		Section:       "V",
		SectionName:   "Exit and reversibility",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The institution can terminate the contract (1) on significant breach by the provider, (2) on circumstances that weaken the provider's ability to perform, (3) on evidenced weaknesses in the provider's ICT risk management, and (4) where instructed by the competent authority.",
		RegulatoryText: "Financial entities shall ensure that contractual arrangements may be terminated in the circumstances set out in Article 28(7), including where the competent authority can no longer effectively supervise the financial entity as a result of the arrangement.",
		Keywords:       []string{"termination", "breach", "supervisory instruction"},
	},
	{
		ID:            "V.4",
		Name:          "Mandatory transition period on termination",
		Reference:     "DORA Art. 30(3)(f)",
		Section:       "V",
		SectionName:   "Exit and reversibility",
		Criticality:   CriticalityMinor,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "An adequate mandatory transition period applies after termination of the critical function, during which the provider continues to perform.",
		RegulatoryText: "The contractual arrangements shall provide for an adequate transition period during which the ICT third-party service provider will continue providing the respective functions or ICT services.",
		Keywords:       []string{"transition period", "continuity of service", "post-termination"},
	},

	// --- Section VI: Business continuity and incidents ---
	{
		ID:            "VI.1",
		Name:          "ICT incident notification duties",
		Reference:     "DORA Art. 30(3)(b); arrêté du 3 novembre 2014 art. 240",
		Section:       "VI",
		SectionName:   "Business continuity and incidents",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityAll,
		VerificationCriteria: "The provider must notify the institution of any ICT incident affecting the outsourced service, with (1) a stated maximum notification delay, (2) a described notification channel and content, and (3) an obligation to report any development that may materially affect service delivery.",
		RegulatoryText: "The contractual arrangements shall include the obligation of the ICT third-party service provider to notify the financial entity of any development that might have a material impact on the service provider's ability to effectively provide the ICT services in line with agreed service levels.",
		Keywords:       []string{"incident notification", "delay", "alert", "material impact"},
	},
	{
		ID:            "VI.2",
		Name:          "Business continuity and disaster recovery plans",
		Reference:     "DORA Art. 30(3)(c)",
		Section:       "VI",
		SectionName:   "Business continuity and incidents",
		Criticality:   CriticalityCritical,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "The provider implements and maintains business contingency plans and ICT disaster recovery arrangements covering the outsourced critical function, and makes evidence of their existence available to the institution.",
		RegulatoryText: "The contractual arrangements shall include the obligation of the ICT third-party service provider to implement and test business contingency plans and to have in place ICT security measures, tools and policies.",
		Keywords:       []string{"business continuity", "BCP", "disaster recovery", "DRP"},
	},
	{
		ID:            "VI.3",
		Name:          "Recovery objectives and plan testing",
		Reference:     "DORA Art. 30(3)(c)",
		Section:       "VI",
		SectionName:   "Business continuity and incidents",
		Criticality:   CriticalityMajor,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "Recovery time and recovery point objectives are stated for the critical function and the continuity plans are tested at a stated minimum frequency, with results communicated to the institution.",
		RegulatoryText: "Service providers supporting critical or important functions should commit to defined recovery objectives and periodic testing of contingency arrangements.",
		Keywords:       []string{"RTO", "RPO", "testing", "frequency"},
	},
	{
		ID:            "VI.4",
		Name:          "Participation in the institution's continuity testing",
		Reference:     "DORA Art. 30(3)(d)",
		Section:       "VI",
		SectionName:   "Business continuity and incidents",
		Criticality:   CriticalityMinor,
		Applicability: ApplicabilityCriticalFunction,
		VerificationCriteria: "The provider participates in the institution's ICT security awareness programmes and digital operational resilience testing, including threat-led penetration testing where applicable.",
		RegulatoryText: "The contractual arrangements shall include the obligation of the ICT third-party service provider to participate and fully cooperate in the financial entity's TLPT as referred to in Articles 26 and 27.",
		Keywords:       []string{"resilience testing", "TLPT", "penetration test", "participation"},
	},
}
