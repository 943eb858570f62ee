package chat

import "strings"

// The virtual assistant is a deterministic keyword matcher: an ordered rule
// table evaluated first-match-wins against the lowercased message text. It
// keeps no conversation state; the same text always produces the same reply.

type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"horário", "horario", "atendimento"},
		reply:    "Nosso horário de atendimento é de segunda a sexta, das 9h às 18h. Também oferecemos suporte jurídico on-line.",
	},
	{
		keywords: []string{"área", "especialidade", "direito"},
		reply:    "Atuamos em Direito do Trabalho, Direito Previdenciário, Direito de Família e Sucessão, Direito Civil, Direito Imobiliário e Direito Administrativo. Sobre qual área você gostaria de saber mais?",
	},
	{
		keywords: []string{"consulta", "agendamento"},
		reply:    "Para agendar uma consulta, preencha o formulário de contato com seus dados ou nos envie seu telefone por aqui. Retornaremos para confirmar o melhor horário.",
	},
	{
		keywords: []string{"preço", "valor", "honorário"},
		reply:    "Os honorários variam conforme a complexidade de cada caso. Na primeira consulta avaliamos a sua situação e apresentamos uma proposta sem compromisso.",
	},
	{
		keywords: []string{"oi", "olá", "bom dia", "boa tarde", "boa noite"},
		reply:    "Olá! Bem-vindo ao atendimento da Valença & Soares Advogados. Como posso ajudar você hoje?",
	},
}

// FallbackReply is returned when no rule matches; an unmatched message never
// goes unanswered.
const FallbackReply = "Obrigado pela sua mensagem! Um de nossos advogados entrará em contato em breve. Se preferir, informe seu nome e telefone para agilizar o retorno."

// Respond maps a visitor message to the assistant's canned reply.
func Respond(message string) string {
	text := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.reply
			}
		}
	}
	return FallbackReply
}
