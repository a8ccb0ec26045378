package strategy

// CaseStudyProjects returns BFC's candidate transformation initiatives from
// the 2018 case study. Cost estimates are midpoints of the quoted cost
// categories; timelines are midpoints of the quoted ranges, in months.
func CaseStudyProjects() []Project {
	return []Project{
		{
			Name:        "New ERP Implementation",
			Description: "Integrate inventory management and order fulfillment operations for consumers",
			PotentialValue: []string{
				"Integrate inventory management and order fulfillment operations for consumers",
				"Obtain full visibility into key business processes through access to real-time, centralized data",
				"Enhance decision-making and planning through access to consolidated metrics and reports",
			},
			Effort:            EffortHigh,
			TimelineMonths:    17.5,
			CostEstimate:      1_500_000,
			StrategicPriority: 9,
			RiskLevel:         8,
		},
		{
			Name:        "IT Infrastructure Upgrade",
			Description: "Upgrade servers, network equipment, storage",
			PotentialValue: []string{
				"Increase capacity to support new applications and services",
				"Improve efficiency with next-generation hardware and monitoring tools",
				"Offset investment costs with lower energy consumption and smaller data center footprint",
			},
			Effort:            EffortHigh,
			TimelineMonths:    15,
			CostEstimate:      750_000,
			StrategicPriority: 7,
			RiskLevel:         6,
		},
		{
			Name:        "Agile and DevOps Transformation",
			Description: "Transform development processes to Agile and DevOps methodologies",
			PotentialValue: []string{
				"Greater agility and speed; reduced time to market",
				"Allow application sponsors, developers, and users to maintain a faster and consistent pace of development and release",
				"Deeper interaction with customer base",
			},
			Effort:            EffortHigh,
			TimelineMonths:    12,
			CostEstimate:      1_200_000,
			StrategicPriority: 8,
			RiskLevel:         7,
		},
		{
			Name:        "Customer Experience Transformation",
			Description: "Expand customer service centers and enhance relationships",
			PotentialValue: []string{
				"Expand customer service centers and hire diligent representatives focusing on enhancing relationships",
				"Invest in new tools/technologies to increase focus on customer experience",
				"Expand brand/customer loyalty and increase revenue",
			},
			Effort:            EffortHigh,
			TimelineMonths:    15,
			CostEstimate:      800_000,
			StrategicPriority: 9,
			RiskLevel:         5,
		},
		{
			Name:        "Cybersecurity Strategy & Assessment",
			Description: "Provide clarity around security strategy and policy",
			PotentialValue: []string{
				"Protect and secure data and mitigate the risk of customer data and proprietary information from being compromised",
				"Identify potential vulnerabilities/weaknesses on Internet-accessible systems",
			},
			Effort:            EffortMedium,
			TimelineMonths:    3.5,
			CostEstimate:      350_000,
			StrategicPriority: 8,
			RiskLevel:         9,
		},
		{
			Name:        "AP Recovery Review",
			Description: "Identify and recover financial leakage",
			PotentialValue: []string{
				"Identify and recover financial leakage in the form of duplicate payments, unused credit memos, and lost or missed discounts",
				"Determine opportunities for working capital improvement",
				"Identify procurement and accounts payable process improvements",
			},
			Effort:            EffortMedium,
			TimelineMonths:    3.5,
			CostEstimate:      300_000,
			StrategicPriority: 6,
			RiskLevel:         4,
		},
		{
			Name:        "International Risk & Compliance Function",
			Description: "Enhance regulatory standing, manage risks, and comply with laws",
			PotentialValue: []string{
				"Enhance regulatory standing, manage risks, and comply with laws, regulations, and policies",
				"Avoid penalties of non-compliance and potential business disruptions and protect reputation",
			},
			Effort:            EffortMedium,
			TimelineMonths:    4,
			CostEstimate:      350_000,
			StrategicPriority: 7,
			RiskLevel:         8,
		},
		{
			Name:        "Data Privacy and Resiliency",
			Description: "Maintain compliance with applicable privacy laws and regulations",
			PotentialValue: []string{
				"Avoid fines by maintaining compliance with applicable privacy laws and regulations",
				"Limit the impact and disruption to operations in the event of a data breach",
				"Increase consumer data reliability",
			},
			Effort:            EffortMedium,
			TimelineMonths:    5,
			CostEstimate:      400_000,
			Dependencies:      []string{"Cybersecurity Strategy & Assessment"},
			StrategicPriority: 8,
			RiskLevel:         9,
		},
		{
			Name:        "Customize Existing ERP System",
			Description: "Leverage existing ERP infrastructure to meet BFC's evolving business requirements",
			PotentialValue: []string{
				"Leverage existing ERP infrastructure to meet BFC's evolving business requirements",
				"Modify internal functionality to accommodate BFC's global expansion",
				"Update scalability factor to ensure the deliverance of reliable data with low latency",
			},
			Effort:            EffortMedium,
			TimelineMonths:    9,
			CostEstimate:      400_000,
			StrategicPriority: 7,
			RiskLevel:         6,
		},
		{
			Name:        "Non-Electronic Processing with RPA Implementation",
			Description: "Automate inventory analysis from requisition to distribution",
			PotentialValue: []string{
				"Automate inventory analysis from requisition to distribution to inventory velocity",
				"Provide management with enhanced reporting capabilities",
				"Increase accuracy in procurement, improve efficiency in recording",
			},
			Effort:            EffortMedium,
			TimelineMonths:    5,
			CostEstimate:      350_000,
			StrategicPriority: 6,
			RiskLevel:         5,
		},
		{
			Name:        "Procurement Transformation",
			Description: "Perform spend analysis to effectively manage direct and indirect costs",
			PotentialValue: []string{
				"Perform spend analysis to effectively manage direct and indirect costs, increasing ROI",
				"Enhance third-party vendor management assessment",
			},
			Effort:            EffortMedium,
			TimelineMonths:    7,
			CostEstimate:      600_000,
			Dependencies:      []string{"AP Recovery Review"},
			StrategicPriority: 7,
			RiskLevel:         6,
		},
		{
			Name:        "Logistics and Fulfillment Transformation",
			Description: "Optimize transportation type/medium and routes",
			PotentialValue: []string{
				"Optimize transportation type/medium and routes, resulting in faster and more cost-efficient shipping",
				"Provide evaluation of potential strategic sites",
			},
			Effort:            EffortMedium,
			TimelineMonths:    7,
			CostEstimate:      650_000,
			StrategicPriority: 8,
			RiskLevel:         7,
		},
		{
			Name:        "Selectively Onboard Managed Services Partners",
			Description: "Scalable resources to meet changing and seasonal demands",
			PotentialValue: []string{
				"Scalable resources to meet changing and seasonal demands",
				"Flexible cost structure to manage expenses and investment",
				"Focus on core capabilities and acquire expertise",
			},
			Effort:            EffortMedium,
			TimelineMonths:    7,
			CostEstimate:      450_000,
			StrategicPriority: 6,
			RiskLevel:         5,
		},
	}
}
