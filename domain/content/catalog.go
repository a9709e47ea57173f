package content

// DefaultItems returns the built-in marketing content catalog: the hot
// topics, visionary interviews, key concepts, and reports surfaced by the
// site. Insertion order here is the tie-break order for ranking.
func DefaultItems() []Item {
	return []Item{
		NewItem(
			"personalization-ai-scale",
			"Personalization at AI Scale",
			"Delivering tailored, individual experiences efficiently at scale",
			"Personalization at AI Scale. Delivering tailored, individual experiences efficiently at scale through advanced AI-driven personalization that adapts in real-time to user behavior and preferences. Our platform leverages machine learning algorithms to create unique experiences for every visitor. Key Benefits: Real-time Adaptation, Enterprise Scale, Predictive Intelligence, Cross-channel Consistency. Implementation Strategy: Data Collection, AI Processing, Content Orchestration, Continuous Learning.",
			CategoryHotTopic,
			WithImage("/images/ai-scale-personalization.webp"),
		),
		NewItem(
			"content-transformation",
			"Content Transformation",
			"Dynamically adapting content for multiple contexts and channels",
			"Content Transformation. Dynamically adapting content for multiple contexts and channels to ensure maximum impact and relevance across all touchpoints. Core Capabilities: Multi-format Adaptation, Context-aware Delivery, Real-time Optimization, Brand Consistency. Use Cases: Cross-channel Marketing, Localization, Device Optimization, Audience Segmentation.",
			CategoryHotTopic,
			WithImage("/images/dynamic-content.webp"),
		),
		NewItem(
			"conversational-ux",
			"Conversational UX",
			"Creating natural, engaging user interactions through chat and voice",
			"Conversational UX. Revolutionize how users interact with your digital platforms through natural language processing and conversational AI interfaces. Core Components: Natural Language Understanding, Context Awareness, Multi-modal Interactions, Emotional Intelligence. Use Cases: Customer Support, Product Discovery, Content Navigation, Accessibility.",
			CategoryHotTopic,
			WithImage("/images/conversational-ux.webp"),
		),
		NewItem(
			"future-of-search",
			"Future of Search",
			"Reimagining search through intent-driven, AI-powered experiences",
			"The future of search: How marketers can get ahead of the AI disruption. Search is changing fast. AI is arbitrating the brand experience. Zero-click results dominate, generative AI tools like ChatGPT and Perplexity are shaping brand perception. Goodbye SEO and SEM as you knew them. Generative Engine Optimization (GEO). AI advertising: A new frontier. People may not visit your website. Their agents might.",
			CategoryHotTopic,
			WithImage("/images/future-of-search.webp"),
		),
		NewItem(
			"generative-ads",
			"Generative Ads",
			"AI-driven creation, optimization, and personalization of advertising",
			"Generative Ads. AI-driven creation, optimization, and personalization of advertising that automatically generates high-performing ad content at scale. AI-Powered Creation: Dynamic Copy Generation, Visual Asset Creation, Multi-variant Production, Brand-consistent Output. Intelligent Optimization: Performance-based Learning, Audience Adaptation, Channel Optimization, Real-time Adjustments.",
			CategoryHotTopic,
			WithImage("/images/generative-ads.webp"),
		),
		NewItem(
			"experience-agents",
			"Experience Agents",
			"Proactive AI agents autonomously enhancing digital experiences",
			"Experience Agents. Autonomous AI agents that orchestrate, optimize, and personalize digital experiences without human intervention. Agent Capabilities: Experience Orchestration, Real-time Optimization, Proactive Engagement, Cross-channel Coordination. Agent Types: Personalization Agents, Optimization Agents, Support Agents, Analytics Agents.",
			CategoryHotTopic,
			WithImage("/images/experience-agents.webp"),
		),
		NewItem(
			"liz-nelson-ai-cms",
			"Liz Nelson on AI-Powered CMS",
			"How AI transforms content management and digital experiences",
			"AI-Powered Content Management Systems. Liz Nelson discusses how artificial intelligence is revolutionizing content management, enabling automated content creation, intelligent tagging, personalized delivery, and dynamic optimization. The future of CMS lies in AI-driven workflows that understand content context, user intent, and business objectives.",
			CategoryVisionary,
			WithImage("/images/liz-nelson.webp"),
		),
		NewItem(
			"ru-barry-ai-revolution",
			"Ru Barry on the AI Revolution in Marketing",
			"Transforming marketing strategies through artificial intelligence",
			"AI Revolution in Marketing. Ru Barry explores how artificial intelligence is fundamentally changing marketing strategies, from predictive analytics and automated campaigns to real-time personalization and customer journey optimization. The integration of AI tools enables marketers to create more effective, data-driven campaigns that resonate with individual customers.",
			CategoryVisionary,
			WithImage("/images/ru-barry.webp"),
		),
		NewItem(
			"vector-embeddings",
			"Vector Embeddings",
			"Mathematical representations that power similarity search and recommendations",
			"Vector Embeddings. Mathematical representations of content that power similarity search, recommendations, and intent understanding. Technical Features: Numerical Representation, Similarity Calculation, Dimensional Space, Machine Learning Integration. Digital Experience Applications: Content similarity matching, Personalized recommendations, Semantic search capabilities, Content clustering and organization, Intent-based user experiences.",
			CategoryConcept,
		),
		NewItem(
			"atomic-content",
			"Atomic Content",
			"Modular, reusable content pieces assembled dynamically across channels",
			"Atomic Content. Breaking content into modular, reusable pieces that can be dynamically assembled and personalized across channels. Design Principles: Modularity, Reusability, Flexibility, Consistency. Digital Experience Applications: Dynamic content assembly, Cross-channel reuse, Personalized composition.",
			CategoryConcept,
		),
		NewItem(
			"content-to-experience-report",
			"From Content to Experience",
			"How AI is shaping the future of marketing",
			"From content to experience: How AI is shaping the future of marketing. Explore how AI is transforming marketing through scalable innovation with our full report and industry specific briefs.",
			CategoryReport,
			WithImage("/images/content-to-experience.webp"),
		),
		NewItem(
			"websites-2025-report",
			"Websites 2025 Report",
			"How marketers are adapting to changing digital trends",
			"Websites 2025 report: How marketers are adapting to changing digital trends. This report explores the evolution of websites, revealing how global organizations are leveraging AI, personalization, and scalable CMS platforms to deliver unmatched user experiences and meet rising customer expectations.",
			CategoryReport,
			WithImage("/images/websites-2025.webp"),
		),
	}
}

// DefaultCorpus returns a Corpus populated with DefaultItems.
func DefaultCorpus() *Corpus {
	return NewCorpus(DefaultItems()...)
}
