// Package knowledge persists the PMBOK practice base in SQLite and retrieves
// the passages most relevant to a project situation by keyword overlap.
package knowledge

import (
	"github.com/pmpulse/analyzer/internal/report"
)

// #region document

// Document is one knowledge-base passage.
type Document struct {
	ID      string
	Domain  string
	Title   string
	Content string
}

// #endregion document

// #region seed

// DefaultDocuments returns the built-in practice base for a domain. An
// unrecognized domain gets the generic set.
func DefaultDocuments(domain report.Domain) []Document {
	switch domain {
	case report.DomainSchedule:
		return scheduleDocs()
	case report.DomainCost:
		return costDocs()
	case report.DomainScope:
		return scopeDocs()
	case report.DomainRisk:
		return riskDocs()
	}
	return genericDocs()
}

func scheduleDocs() []Document {
	return []Document{
		{
			ID:      "cronograma_001",
			Domain:  string(report.DomainSchedule),
			Title:   "Gerenciamento do Cronograma - Visão Geral",
			Content: "O gerenciamento do cronograma do projeto inclui os processos necessários para gerenciar o término pontual do projeto. Os processos de gerenciamento do cronograma são: Planejar o gerenciamento do cronograma, Definir as atividades, Sequenciar as atividades, Estimar as durações das atividades, Desenvolver o cronograma e Controlar o cronograma.",
		},
		{
			ID:      "cronograma_002",
			Domain:  string(report.DomainSchedule),
			Title:   "Método do Caminho Crítico (CPM)",
			Content: "O método do caminho crítico (CPM) é usado para estimar a duração mínima do projeto e determinar o grau de flexibilidade nos caminhos lógicos da rede dentro do modelo do cronograma. Esta técnica de análise de rede do cronograma calcula as datas de início e término mais cedo e mais tarde, teóricas, para todas as atividades, sem considerar quaisquer limitações de recursos.",
		},
		{
			ID:      "cronograma_003",
			Domain:  string(report.DomainSchedule),
			Title:   "Técnica de Otimização de Recursos",
			Content: "As técnicas de otimização de recursos incluem, mas não estão limitadas a: Nivelamento de recursos - técnica na qual as datas de início e término são ajustadas com base nas restrições de recursos, com o objetivo de equilibrar a demanda por recursos com a oferta disponível. Estabilização de recursos - técnica que ajusta as atividades de um modelo de cronograma, de modo que as necessidades de recursos do projeto não excedam certos limites predefinidos.",
		},
		{
			ID:      "cronograma_004",
			Domain:  string(report.DomainSchedule),
			Title:   "Compressão do Cronograma",
			Content: "As técnicas de compressão do cronograma são usadas para encurtar a duração do cronograma sem reduzir o escopo do projeto. Incluem: Fast tracking - técnica de compressão do cronograma em que atividades ou fases normalmente executadas em sequência são realizadas em paralelo. Crashing - técnica de compressão do cronograma na qual os custos e recursos são aumentados para reduzir a duração.",
		},
		{
			ID:      "cronograma_005",
			Domain:  string(report.DomainSchedule),
			Title:   "Análise de Valor Agregado (EVA) para Cronograma",
			Content: "A análise de valor agregado (EVA) compara a linha de base do cronograma com o progresso real para determinar se há variações. Métricas importantes incluem: Valor Planejado (PV) - orçamento autorizado para o trabalho planejado. Valor Agregado (EV) - medida do trabalho realizado expressa em termos do orçamento autorizado. Índice de Desempenho de Cronograma (SPI) - medida de eficiência do cronograma expressa como a razão entre o valor agregado e o valor planejado. SPI = EV/PV.",
		},
		{
			ID:      "cronograma_006",
			Domain:  string(report.DomainSchedule),
			Title:   "Interpretação do SPI",
			Content: "O Índice de Desempenho de Cronograma (SPI) é interpretado da seguinte forma: SPI > 1,0: Mais trabalho foi concluído do que o planejado (adiantado). SPI = 1,0: O trabalho concluído é exatamente igual ao planejado (no prazo). SPI < 1,0: Menos trabalho foi concluído do que o planejado (atrasado). Um SPI < 0,8 é geralmente considerado crítico e requer ações corretivas imediatas.",
		},
		{
			ID:      "cronograma_007",
			Domain:  string(report.DomainSchedule),
			Title:   "Ações Corretivas para Atrasos no Cronograma",
			Content: "Quando o projeto está atrasado (SPI < 1,0), as seguintes ações corretivas podem ser consideradas: Revisar o caminho crítico e identificar oportunidades de fast-tracking. Alocar recursos adicionais para atividades críticas. Reduzir o escopo, se aprovado pelos stakeholders. Revisar as dependências entre atividades para identificar oportunidades de otimização. Implementar horas extras para recuperar o atraso. Considerar a revisão da linha de base do cronograma se os atrasos forem significativos e não recuperáveis.",
		},
		{
			ID:      "cronograma_008",
			Domain:  string(report.DomainSchedule),
			Title:   "Monitoramento e Controle do Cronograma",
			Content: "O processo de controle do cronograma envolve: Determinar o status atual do cronograma do projeto. Influenciar os fatores que criam mudanças no cronograma. Determinar se o cronograma do projeto mudou. Gerenciar as mudanças reais conforme ocorrem. Um sistema eficaz de controle de cronograma deve incluir procedimentos para registrar, analisar e relatar desvios do cronograma, bem como para implementar ações corretivas.",
		},
		{
			ID:      "cronograma_009",
			Domain:  string(report.DomainSchedule),
			Title:   "Ferramentas de Gerenciamento de Cronograma",
			Content: "Ferramentas comuns para gerenciamento de cronograma incluem: Software de gerenciamento de projetos para criar e manter o modelo do cronograma. Sistemas de coleta de dados para registrar o progresso real. Reuniões de revisão de status para avaliar o progresso. Técnicas de previsão para estimar o término. Sistemas de gerenciamento de mudanças para controlar alterações no cronograma.",
		},
		{
			ID:      "cronograma_010",
			Domain:  string(report.DomainSchedule),
			Title:   "Melhores Práticas para Gerenciamento de Cronograma",
			Content: "Melhores práticas para gerenciamento eficaz do cronograma incluem: Desenvolver um cronograma realista com a participação da equipe. Incluir reservas de contingência para riscos conhecidos. Manter o cronograma atualizado com o progresso real. Comunicar regularmente o status do cronograma aos stakeholders. Analisar tendências de desempenho para identificar problemas potenciais antecipadamente. Implementar ações corretivas rapidamente quando desvios são identificados. Documentar lições aprendidas para projetos futuros.",
		},
	}
}

func costDocs() []Document {
	return []Document{
		{
			ID:      "custos_001",
			Domain:  string(report.DomainCost),
			Title:   "Gerenciamento dos Custos - Visão Geral",
			Content: "O gerenciamento dos custos do projeto inclui os processos envolvidos em planejamento, estimativas, orçamentos, financiamentos, gerenciamento e controle dos custos, de modo que o projeto possa ser terminado dentro do orçamento aprovado. Os processos de gerenciamento dos custos são: Planejar o gerenciamento dos custos, Estimar os custos, Determinar o orçamento e Controlar os custos.",
		},
		{
			ID:      "custos_002",
			Domain:  string(report.DomainCost),
			Title:   "Tipos de Custos",
			Content: "Os custos do projeto podem ser classificados como: Custos diretos - diretamente atribuíveis às atividades do projeto (mão de obra, materiais, equipamentos). Custos indiretos - não diretamente atribuíveis, mas necessários para o projeto (overhead, administração). Custos fixos - permanecem constantes independentemente do volume de trabalho. Custos variáveis - variam de acordo com o volume de trabalho. Custos de qualidade - custos relacionados à prevenção, avaliação e falhas.",
		},
		{
			ID:      "custos_003",
			Domain:  string(report.DomainCost),
			Title:   "Técnicas de Estimativa de Custos",
			Content: "As técnicas de estimativa de custos incluem: Estimativa análoga - usa custos de projetos anteriores similares. Estimativa paramétrica - usa relações estatísticas entre dados históricos e variáveis. Estimativa bottom-up - estima custos de componentes individuais e os agrega. Estimativa de três pontos - usa estimativas otimista, mais provável e pessimista. Análise de reservas - adiciona reservas para contingências e gerenciamento.",
		},
		{
			ID:      "custos_004",
			Domain:  string(report.DomainCost),
			Title:   "Determinação do Orçamento",
			Content: "O processo de determinação do orçamento envolve: Agregar os custos estimados das atividades individuais ou pacotes de trabalho. Adicionar reservas para contingências para riscos conhecidos. Adicionar reservas de gerenciamento para mudanças não planejadas. Estabelecer a linha de base dos custos - versão aprovada do orçamento do projeto no tempo. Determinar requisitos de financiamento - total e periódicos.",
		},
		{
			ID:      "custos_005",
			Domain:  string(report.DomainCost),
			Title:   "Análise de Valor Agregado (EVA) para Custos",
			Content: "A análise de valor agregado (EVA) integra escopo, cronograma e custos. Métricas importantes incluem: Valor Planejado (PV) - orçamento autorizado para o trabalho planejado. Valor Agregado (EV) - medida do trabalho realizado expressa em termos do orçamento. Custo Real (AC) - custo real incorrido para o trabalho realizado. Índice de Desempenho de Custo (CPI) - medida de eficiência de custos expressa como a razão entre o valor agregado e o custo real. CPI = EV/AC.",
		},
		{
			ID:      "custos_006",
			Domain:  string(report.DomainCost),
			Title:   "Interpretação do CPI",
			Content: "O Índice de Desempenho de Custo (CPI) é interpretado da seguinte forma: CPI > 1,0: O trabalho está sendo realizado a um custo menor que o planejado (abaixo do orçamento). CPI = 1,0: O trabalho está sendo realizado exatamente ao custo planejado (dentro do orçamento). CPI < 1,0: O trabalho está sendo realizado a um custo maior que o planejado (acima do orçamento). Um CPI < 0,8 é geralmente considerado crítico e requer ações corretivas imediatas.",
		},
		{
			ID:      "custos_007",
			Domain:  string(report.DomainCost),
			Title:   "Previsões de Custos",
			Content: "As previsões de custos incluem: Estimativa para Terminar (ETC) - custo esperado para terminar todo o trabalho restante. Estimativa no Término (EAC) - custo total esperado para concluir todo o trabalho. Variação no Término (VAC) - diferença entre o orçamento no término e a estimativa no término. Fórmulas comuns: EAC = AC + ETC (para variações atípicas) ou EAC = BAC/CPI (para variações típicas). VAC = BAC - EAC.",
		},
		{
			ID:      "custos_008",
			Domain:  string(report.DomainCost),
			Title:   "Ações Corretivas para Desvios de Custos",
			Content: "Quando o projeto está acima do orçamento (CPI < 1,0), as seguintes ações corretivas podem ser consideradas: Revisar as categorias de custo com maior desvio. Implementar medidas de economia sem impactar a qualidade. Renegociar contratos com fornecedores. Revisar o escopo para identificar possíveis reduções. Otimizar a alocação de recursos. Revisar processos para identificar ineficiências. Implementar controles mais rigorosos para aprovação de despesas futuras.",
		},
		{
			ID:      "custos_009",
			Domain:  string(report.DomainCost),
			Title:   "Controle de Custos",
			Content: "O processo de controle de custos envolve: Monitorar o status do projeto para atualizar os custos. Gerenciar mudanças na linha de base de custos. Assegurar que os gastos não excedam os recursos autorizados. Monitorar o desempenho de custos para detectar variações. Registrar mudanças apropriadas na linha de base de custos. Informar as partes interessadas sobre mudanças aprovadas. Agir para manter os excessos de custos dentro de limites aceitáveis.",
		},
		{
			ID:      "custos_010",
			Domain:  string(report.DomainCost),
			Title:   "Melhores Práticas para Gerenciamento de Custos",
			Content: "Melhores práticas para gerenciamento eficaz de custos incluem: Desenvolver estimativas realistas com a participação da equipe. Incluir reservas adequadas para riscos conhecidos. Manter o orçamento atualizado com os custos reais. Comunicar regularmente o status dos custos aos stakeholders. Analisar tendências de desempenho para identificar problemas potenciais antecipadamente. Implementar ações corretivas rapidamente quando desvios são identificados. Documentar lições aprendidas para projetos futuros.",
		},
	}
}

func scopeDocs() []Document {
	return []Document{
		{
			ID:      "escopo_001",
			Domain:  string(report.DomainScope),
			Title:   "Gerenciamento do Escopo - Visão Geral",
			Content: "O gerenciamento do escopo do projeto inclui os processos necessários para assegurar que o projeto inclua todo o trabalho necessário, e apenas o necessário, para terminar o projeto com sucesso. Os processos de gerenciamento do escopo são: Planejar o gerenciamento do escopo, Coletar os requisitos, Definir o escopo, Criar a EAP, Validar o escopo e Controlar o escopo.",
		},
		{
			ID:      "escopo_002",
			Domain:  string(report.DomainScope),
			Title:   "Definição do Escopo",
			Content: "A definição do escopo envolve desenvolver uma descrição detalhada do projeto e do produto. Ela prepara a declaração detalhada do escopo do projeto, que serve como base para futuras decisões do projeto. A declaração do escopo do projeto documenta: Descrição do escopo do produto, Entregas do projeto, Critérios de aceitação, Exclusões do projeto, Restrições e Premissas.",
		},
		{
			ID:      "escopo_003",
			Domain:  string(report.DomainScope),
			Title:   "Estrutura Analítica do Projeto (EAP)",
			Content: "A Estrutura Analítica do Projeto (EAP) é uma decomposição hierárquica do escopo total do trabalho a ser executado pela equipe do projeto a fim de atingir os objetivos do projeto e criar as entregas exigidas. A EAP organiza e define o escopo total do projeto e representa o trabalho especificado na declaração do escopo do projeto aprovada.",
		},
		{
			ID:      "escopo_004",
			Domain:  string(report.DomainScope),
			Title:   "Validação do Escopo",
			Content: "A validação do escopo é o processo de formalização da aceitação das entregas concluídas do projeto. Ela proporciona objetividade ao processo de aceitação e aumenta a probabilidade da aceitação final do produto, serviço ou resultado, através da validação de cada entrega. Este processo é realizado periodicamente durante o projeto.",
		},
		{
			ID:      "escopo_005",
			Domain:  string(report.DomainScope),
			Title:   "Controle do Escopo",
			Content: "O controle do escopo é o processo de monitoramento do status do escopo do projeto e do produto e gerenciamento das mudanças feitas na linha de base do escopo. O principal benefício deste processo é permitir que a linha de base do escopo seja mantida ao longo de todo o projeto. O controle do escopo assegura que todas as mudanças solicitadas e ações corretivas ou preventivas recomendadas sejam processadas através do processo Realizar o controle integrado de mudanças.",
		},
		{
			ID:      "escopo_006",
			Domain:  string(report.DomainScope),
			Title:   "Gerenciamento de Requisitos",
			Content: "O gerenciamento de requisitos inclui as atividades para determinar, documentar e gerenciar as necessidades e requisitos das partes interessadas para atender aos objetivos do projeto. Os requisitos são a base para definir o escopo do projeto e do produto. Eles devem ser documentados, analisados, priorizados, e aprovados antes de serem incluídos na linha de base do escopo.",
		},
		{
			ID:      "escopo_007",
			Domain:  string(report.DomainScope),
			Title:   "Mudanças de Escopo",
			Content: "As mudanças de escopo são alterações na linha de base do escopo aprovada. Elas podem ocorrer devido a: Requisitos não identificados inicialmente, Mudanças nas necessidades dos stakeholders, Restrições ou premissas que se provaram inválidas, Oportunidades de melhoria identificadas durante o projeto. Todas as mudanças de escopo devem ser formalmente documentadas, avaliadas quanto ao impacto, e aprovadas antes da implementação.",
		},
		{
			ID:      "escopo_008",
			Domain:  string(report.DomainScope),
			Title:   "Impacto das Mudanças de Escopo",
			Content: "As mudanças de escopo podem ter impacto significativo no projeto, afetando: Cronograma - adição de trabalho geralmente aumenta a duração do projeto. Custos - trabalho adicional geralmente aumenta os custos do projeto. Recursos - pode ser necessário alocar recursos adicionais. Qualidade - mudanças apressadas podem comprometer a qualidade. Riscos - novas atividades podem introduzir novos riscos. É essencial avaliar completamente esses impactos antes de aprovar mudanças de escopo.",
		},
		{
			ID:      "escopo_009",
			Domain:  string(report.DomainScope),
			Title:   "Processo de Controle de Mudanças",
			Content: "O processo de controle de mudanças para o escopo inclui: Identificar e documentar a mudança solicitada. Avaliar o impacto da mudança no cronograma, custo, recursos, qualidade e riscos. Justificar a necessidade da mudança. Obter aprovação dos stakeholders apropriados. Atualizar a linha de base do escopo e outros documentos do projeto. Comunicar a mudança aprovada a todas as partes interessadas. Implementar a mudança de forma controlada.",
		},
		{
			ID:      "escopo_010",
			Domain:  string(report.DomainScope),
			Title:   "Melhores Práticas para Gerenciamento de Escopo",
			Content: "Melhores práticas para gerenciamento eficaz do escopo incluem: Envolver os stakeholders na definição do escopo. Documentar claramente o escopo, incluindo o que está dentro e fora do escopo. Obter aprovação formal da declaração do escopo. Criar uma EAP detalhada e completa. Implementar um processo rigoroso de controle de mudanças. Comunicar regularmente o status do escopo aos stakeholders. Validar formalmente as entregas com os stakeholders. Documentar lições aprendidas relacionadas ao escopo para projetos futuros.",
		},
	}
}

func riskDocs() []Document {
	return []Document{
		{
			ID:      "riscos_001",
			Domain:  string(report.DomainRisk),
			Title:   "Gerenciamento dos Riscos - Visão Geral",
			Content: "O gerenciamento dos riscos do projeto inclui os processos de condução de planejamento, identificação, análise, planejamento de respostas, implementação de respostas e monitoramento de riscos em um projeto. Os processos são: Planejar o gerenciamento dos riscos, Identificar os riscos, Realizar a análise qualitativa dos riscos, Realizar a análise quantitativa dos riscos, Planejar as respostas aos riscos, Implementar respostas aos riscos e Monitorar os riscos.",
		},
		{
			ID:      "riscos_002",
			Domain:  string(report.DomainRisk),
			Title:   "Identificação de Riscos",
			Content: "A identificação dos riscos é o processo de determinação dos riscos que podem afetar o projeto e de documentação das suas características. O principal benefício deste processo é a documentação dos riscos existentes e o conhecimento e a capacidade que ele fornece à equipe do projeto de antecipar eventos. Técnicas incluem: Brainstorming, Técnica Delphi, Entrevistas, Análise de causa-raiz, Análise SWOT, Análise de premissas e restrições.",
		},
		{
			ID:      "riscos_003",
			Domain:  string(report.DomainRisk),
			Title:   "Análise Qualitativa de Riscos",
			Content: "A análise qualitativa dos riscos é o processo de priorização de riscos para análise ou ação adicional através da avaliação e combinação de sua probabilidade de ocorrência e impacto. O principal benefício deste processo é permitir que os gerentes de projetos reduzam o nível de incerteza e foquem nos riscos de alta prioridade. A matriz de probabilidade e impacto é uma ferramenta comum para classificar riscos.",
		},
		{
			ID:      "riscos_004",
			Domain:  string(report.DomainRisk),
			Title:   "Análise Quantitativa de Riscos",
			Content: "A análise quantitativa dos riscos é o processo de analisar numericamente o efeito combinado dos riscos identificados e outras fontes de incerteza nos objetivos gerais do projeto. O principal benefício deste processo é que ele produz informações quantitativas dos riscos para apoiar a tomada de decisões a fim de reduzir a incerteza do projeto. Técnicas incluem: Simulação de Monte Carlo, Análise de sensibilidade, Análise de valor monetário esperado, Árvore de decisão.",
		},
		{
			ID:      "riscos_005",
			Domain:  string(report.DomainRisk),
			Title:   "Planejamento de Respostas aos Riscos",
			Content: "O planejamento das respostas aos riscos é o processo de desenvolvimento de opções, seleção de estratégias e acordos sobre ações para abordar a exposição geral de riscos do projeto, e também para tratar os riscos individuais do projeto. Estratégias para riscos negativos (ameaças) incluem: Evitar, Transferir, Mitigar e Aceitar. Estratégias para riscos positivos (oportunidades) incluem: Explorar, Melhorar, Compartilhar e Aceitar.",
		},
		{
			ID:      "riscos_006",
			Domain:  string(report.DomainRisk),
			Title:   "Implementação de Respostas aos Riscos",
			Content: "A implementação das respostas aos riscos é o processo de implementar planos acordados de resposta aos riscos. O principal benefício deste processo é a garantia de que as respostas aos riscos acordadas sejam executadas conforme planejado, a fim de abordar a exposição ao risco do projeto geral, minimizar ameaças individuais do projeto e maximizar oportunidades individuais do projeto.",
		},
		{
			ID:      "riscos_007",
			Domain:  string(report.DomainRisk),
			Title:   "Monitoramento dos Riscos",
			Content: "O monitoramento dos riscos é o processo de monitorar a implementação de planos acordados de resposta aos riscos, acompanhar riscos identificados, identificar e analisar novos riscos, e avaliar a eficácia do processo de risco ao longo do projeto. O principal benefício deste processo é permitir que as decisões do projeto sejam baseadas em informações atuais sobre a exposição ao risco do projeto geral e riscos individuais do projeto.",
		},
		{
			ID:      "riscos_008",
			Domain:  string(report.DomainRisk),
			Title:   "Registro de Riscos",
			Content: "O registro de riscos é um documento em que os resultados da análise de riscos e o planejamento das respostas aos riscos são registrados. Ele contém: Lista de riscos identificados, Proprietários dos riscos, Resultados da análise qualitativa e quantitativa, Estratégias de resposta acordadas, Ações específicas para implementar a estratégia de resposta escolhida, Sintomas e sinais de alerta, Orçamento e cronograma para respostas, Planos de contingência e reservas.",
		},
		{
			ID:      "riscos_009",
			Domain:  string(report.DomainRisk),
			Title:   "Categorias de Riscos",
			Content: "As categorias de riscos fornecem uma estrutura para identificar riscos de forma sistemática. Categorias comuns incluem: Riscos técnicos - relacionados à tecnologia, requisitos, complexidade, interfaces, desempenho e confiabilidade. Riscos de gestão - relacionados a estimativas, planejamento, controle e comunicação. Riscos organizacionais - relacionados a recursos, financiamento e priorização. Riscos externos - relacionados a legislação, mercado, cliente, concorrência, fornecedores, clima e desastres naturais.",
		},
		{
			ID:      "riscos_010",
			Domain:  string(report.DomainRisk),
			Title:   "Melhores Práticas para Gerenciamento de Riscos",
			Content: "Melhores práticas para gerenciamento eficaz de riscos incluem: Envolver os stakeholders na identificação e análise de riscos. Manter o registro de riscos atualizado ao longo do projeto. Revisar regularmente os riscos em reuniões de status. Designar proprietários para cada risco. Desenvolver planos de resposta específicos e acionáveis. Alocar reservas adequadas para contingências. Monitorar gatilhos de risco e implementar respostas rapidamente quando necessário. Comunicar regularmente o status dos riscos aos stakeholders. Documentar lições aprendidas relacionadas a riscos para projetos futuros.",
		},
	}
}

func genericDocs() []Document {
	return []Document{
		{
			ID:      "geral_001",
			Domain:  "geral",
			Title:   "Gerenciamento de Projetos - Visão Geral",
			Content: "O gerenciamento de projetos é a aplicação de conhecimentos, habilidades, ferramentas e técnicas às atividades do projeto a fim de cumprir os seus requisitos. O gerenciamento de projetos é realizado através da aplicação e integração apropriadas dos processos de gerenciamento de projetos identificados para o projeto.",
		},
		{
			ID:      "geral_002",
			Domain:  "geral",
			Title:   "Áreas de Conhecimento do PMBOK",
			Content: "O Guia PMBOK identifica 10 áreas de conhecimento: Gerenciamento da integração, Gerenciamento do escopo, Gerenciamento do cronograma, Gerenciamento dos custos, Gerenciamento da qualidade, Gerenciamento dos recursos, Gerenciamento das comunicações, Gerenciamento dos riscos, Gerenciamento das aquisições e Gerenciamento das partes interessadas.",
		},
		{
			ID:      "geral_003",
			Domain:  "geral",
			Title:   "Grupos de Processos de Gerenciamento de Projetos",
			Content: "Os processos de gerenciamento de projetos são agrupados em cinco categorias: Processos de iniciação, Processos de planejamento, Processos de execução, Processos de monitoramento e controle, e Processos de encerramento.",
		},
	}
}

// #endregion seed
